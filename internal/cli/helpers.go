package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalListOutputTypes = []string{textFormat, jsonFormat, yamlFormat}
)

func validateOutput(output string, legal []string) error {
	if len(output) > 0 && !funk.Contains(legal, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legal, ", "))
	}
	return nil
}

// printStructured writes v as indented JSON or as YAML.
func printStructured(w io.Writer, output string, v any) error {
	switch output {
	case jsonFormat:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case yamlFormat:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}

// readInput reads path, or the command's stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
