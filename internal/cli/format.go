package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(strings.TrimSpace(s))); v {
	case formatText, formatJSON:
		*f = v
		return nil
	default:
		return fmt.Errorf("invalid format %q (want text or json)", s)
	}
}

func (f *outputFormat) Type() string {
	return "format"
}

// render writes v as indented JSON, or the text produced by text.
func render(w io.Writer, format outputFormat, v any, text func() string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(w, text())
	return err
}
