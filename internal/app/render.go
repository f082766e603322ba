package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samvad-hq/line-login/internal/config"
	"gopkg.in/yaml.v3"
)

// Render writes v as indented JSON or block-style YAML. YAML is produced from
// the JSON encoding so both formats share field names and omitted optionals.
func Render(w io.Writer, format string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	switch format {
	case config.OutputJSON:
		_, err = fmt.Fprintf(w, "%s\n", raw)
		return err
	case config.OutputYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return fmt.Errorf("convert result to yaml: %w", err)
		}
		blockStyle(&node)
		out, err := yaml.Marshal(&node)
		if err != nil {
			return fmt.Errorf("encode yaml result: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return config.ValidateOutput(format)
	}
}

// blockStyle clears the flow and quoting styles inherited from JSON input.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
