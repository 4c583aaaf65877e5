package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/stickycal/pkg/board"
)

var (
	ErrNotFound  = errors.New("store: session not found")
	ErrAmbiguous = errors.New("store: session prefix is ambiguous")
)

const transcriptsDir = "transcripts"

// Header is record 0 of every session: the board the events were applied to.
type Header struct {
	Year     int        `json:"year" yaml:"year"`
	Month    time.Month `json:"month" yaml:"month"`
	Capacity int        `json:"capacity" yaml:"capacity"`
}

// First returns the first day of the recorded month.
func (h Header) First() time.Time {
	return time.Date(h.Year, h.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Entry is one recorded record. Seq 0 carries the Header; every later entry
// carries an event and the outcome it produced.
type Entry struct {
	Seq    int                `json:"seq" yaml:"seq"`
	At     time.Time          `json:"at" yaml:"at"`
	Header *Header            `json:"header,omitempty" yaml:"header,omitempty"`
	Event  *board.EventRecord `json:"event,omitempty" yaml:"event,omitempty"`
	Result board.Result       `json:"result,omitempty" yaml:"result,omitempty"`
	Full   bool               `json:"full,omitempty" yaml:"full,omitempty"`
}

// Transcripts stores gesture transcripts on disk, one directory per session.
type Transcripts struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

// Open creates a transcript store rooted at cfg.BasePath().
func Open(cfg Config) (*Transcripts, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Transcripts{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		now:      time.Now,
	}, nil
}

// Session appends records for one board session. It implements app.Recorder.
type Session struct {
	ID string

	mu  sync.Mutex
	t   *Transcripts
	seq int
}

// Begin starts a new session and writes its header.
func (t *Transcripts) Begin(h Header) (*Session, error) {
	s := &Session{ID: uuid.New().String(), t: t}
	if err := t.write(s.ID, Entry{Seq: 0, At: t.now().UTC(), Header: &h}); err != nil {
		return nil, err
	}
	return s, nil
}

// Record appends ev and its outcome.
func (s *Session) Record(ev board.Event, out board.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	rec := board.Encode(ev)
	return s.t.write(s.ID, Entry{
		Seq:    s.seq,
		At:     s.t.now().UTC(),
		Event:  &rec,
		Result: out.Result,
		Full:   out.Full,
	})
}

func (t *Transcripts) write(id string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}
	if err := t.d.Write(toKey(id, e.Seq), data); err != nil {
		return fmt.Errorf("store: write record: %w", err)
	}
	return nil
}

func (t *Transcripts) read(key string) (Entry, error) {
	val, err := t.d.Read(key)
	if err != nil {
		return Entry{}, err
	}
	var e Entry
	if err := json.Unmarshal(val, &e); err != nil {
		return Entry{}, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return e, nil
}

// SessionInfo summarizes a stored session.
type SessionInfo struct {
	ID      string    `json:"id" yaml:"id"`
	Started time.Time `json:"started" yaml:"started"`
	Header  Header    `json:"header" yaml:"header"`
	Events  int       `json:"events" yaml:"events"`
}

// Sessions lists stored sessions, oldest first.
func (t *Transcripts) Sessions(ctx context.Context) ([]SessionInfo, error) {
	counts := make(map[string]int)
	for key := range t.d.KeysPrefix(transcriptsDir+"-", ctx.Done()) {
		pk := keyToPathTransform(key)
		if len(pk.Path) != 2 {
			continue
		}
		counts[pk.Path[1]]++
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list := make([]SessionInfo, 0, len(counts))
	for compact, n := range counts {
		id := expandID(compact)
		head, err := t.read(toKey(id, 0))
		if err != nil || head.Header == nil {
			continue
		}
		list = append(list, SessionInfo{ID: id, Started: head.At, Header: *head.Header, Events: n - 1})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Started.Equal(list[j].Started) {
			return list[i].ID < list[j].ID
		}
		return list[i].Started.Before(list[j].Started)
	})
	return list, nil
}

// Resolve expands a unique id prefix to a full session id.
func (t *Transcripts) Resolve(ctx context.Context, prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", ErrNotFound
	}
	sessions, err := t.Sessions(ctx)
	if err != nil {
		return "", err
	}
	match := ""
	for _, s := range sessions {
		if !strings.HasPrefix(s.ID, prefix) {
			continue
		}
		if s.ID == prefix {
			return s.ID, nil
		}
		if match != "" {
			return "", fmt.Errorf("%w: %s", ErrAmbiguous, prefix)
		}
		match = s.ID
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}
	return match, nil
}

// Transcript is a fully loaded session.
type Transcript struct {
	ID      string  `json:"id" yaml:"id"`
	Header  Header  `json:"header" yaml:"header"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Load reads every record of session id in order.
func (t *Transcripts) Load(ctx context.Context, id string) (Transcript, error) {
	entries, err := t.entries(ctx, id)
	if err != nil {
		return Transcript{}, err
	}
	if len(entries) == 0 || entries[0].Seq != 0 || entries[0].Header == nil {
		return Transcript{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return Transcript{ID: id, Header: *entries[0].Header, Entries: entries[1:]}, nil
}

func (t *Transcripts) entries(ctx context.Context, id string) ([]Entry, error) {
	var entries []Entry
	for key := range t.d.KeysPrefix(sessionPrefix(id), ctx.Done()) {
		e, err := t.read(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })
	return entries, nil
}

// Delete erases every record of session id.
func (t *Transcripts) Delete(ctx context.Context, id string) error {
	var keys []string
	for key := range t.d.KeysPrefix(sessionPrefix(id), ctx.Done()) {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	for _, key := range keys {
		if err := t.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

// Replay rebuilds the recorded board and re-applies every event. An error is
// returned when an event decodes badly or yields a different result than the
// one recorded.
func (tr Transcript) Replay(opts ...board.Option) (*board.Machine, error) {
	m := board.NewMachine(board.New(tr.Header.First(), tr.Header.Capacity), opts...)
	for _, e := range tr.Entries {
		if e.Event == nil {
			continue
		}
		ev, err := e.Event.Decode()
		if err != nil {
			return m, fmt.Errorf("store: record %d: %w", e.Seq, err)
		}
		out := m.Dispatch(ev)
		if e.Result != "" && out.Result != e.Result {
			return m, fmt.Errorf("store: record %d: %s replayed as %s, recorded %s", e.Seq, ev.Kind(), out.Result, e.Result)
		}
	}
	return m, nil
}

// Keys look like transcripts-<compact uuid>-<seq>; the dashes of the uuid are
// dropped so the key splits cleanly into directories.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(id string, seq int) string {
	return fmt.Sprintf("%s%06d", sessionPrefix(id), seq)
}

func sessionPrefix(id string) string {
	return fmt.Sprintf("%s-%s-", transcriptsDir, compactID(id))
}

func compactID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

func expandID(compact string) string {
	u, err := uuid.Parse(compact)
	if err != nil {
		return compact
	}
	return u.String()
}

func seqFromFile(name string) (int, bool) {
	n, err := strconv.Atoi(name)
	return n, err == nil
}
