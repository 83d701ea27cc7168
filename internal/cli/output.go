package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/slayerdex/internal/config"
)

// resolveOutputFormat returns the --output value, or the configured default
// when the flag is empty.
func resolveOutputFormat(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = config.GetGlobalConfig().Output.DefaultFormat
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
