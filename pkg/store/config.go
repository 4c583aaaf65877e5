package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/stickycal/pkg/calendar"
)

// Config is the resolved runtime configuration.
type Config interface {
	BasePath() string
	Capacity() int
	Record() bool
	Listen() string
	LogLevel() slog.Level
}

const (
	DefaultPath   = "~/.stickycal.db"
	DefaultListen = "127.0.0.1:8080"
)

// LoadConfig reads .stickycal.yaml from $STICKYCAL_CONFIG_PATH or the working
// directory, then applies STICKYCAL_* environment overrides. A .env file in
// the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("capacity", calendar.DefaultCapacity)
	v.SetDefault("record", false)
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("log_level", "info")
	v.SetConfigName(".stickycal") // .yaml is implicit
	v.SetEnvPrefix("STICKYCAL")
	v.AutomaticEnv()

	if override := os.Getenv("STICKYCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	level, err := ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}
	capacity := v.GetInt("capacity")
	if capacity < 1 {
		return nil, fmt.Errorf("store: capacity must be at least 1, got %d", capacity)
	}

	return &fileConfig{
		Path:  path,
		Cap:   capacity,
		Rec:   v.GetBool("record"),
		Addr:  v.GetString("listen"),
		Level: level,
	}, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("store: log_level: %w", err)
	}
	return l, nil
}

type fileConfig struct {
	Path  string     `json:"path"`
	Cap   int        `json:"capacity"`
	Rec   bool       `json:"record"`
	Addr  string     `json:"listen"`
	Level slog.Level `json:"log_level"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Capacity() int { return f.Cap }

func (f *fileConfig) Record() bool { return f.Rec }

func (f *fileConfig) Listen() string { return f.Addr }

func (f *fileConfig) LogLevel() slog.Level { return f.Level }
