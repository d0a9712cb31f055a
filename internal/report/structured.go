package report

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

type JSONRenderer struct{}

func (r *JSONRenderer) SupportedFormat() Format {
	return FormatJSON
}

func (r *JSONRenderer) Render(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

type YAMLRenderer struct{}

func (r *YAMLRenderer) SupportedFormat() Format {
	return FormatYAML
}

func (r *YAMLRenderer) Render(w io.Writer, rep *Report) error {
	out, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	return nil
}
