package gate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/benchgate/pkg/compare"
)

// jsonOutput is the machine-readable run result emitted with --json.
type jsonOutput struct {
	Version   string           `json:"version"`
	Threshold float64          `json:"threshold"`
	Files     []compare.Result `json:"files,omitempty"`
	Skipped   []string         `json:"skipped,omitempty"`
	Passed    bool             `json:"passed"`
	Error     string           `json:"error,omitempty"`
}

const outputVersion = "1.0"

func writeJSON(w io.Writer, out jsonOutput) error {
	out.Version = outputVersion
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
