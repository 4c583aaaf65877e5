package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", OutputText,
		"Output format. One of 'text', 'json' or 'yaml'.")
}

// Validate rejects unknown formats.
func (o *OutputOptions) Validate() error {
	switch o.Output {
	case "", OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("options: unknown output %q", o.Output)
}

// Structured reports whether v should be encoded rather than printed.
func (o *OutputOptions) Structured() bool {
	return o.Output == OutputJSON || o.Output == OutputYAML
}

// Encode writes v in the selected structured format.
func (o *OutputOptions) Encode(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	switch o.Output {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func (o *OutputOptions) HandleError(err error) error {
	if o.Structured() && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		if encErr := o.Encode(color.Output, out); encErr != nil {
			return encErr
		}
		return nil
	}
	return err
}
