package geo

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlNumber keeps the integer or float kind of a JSON number in YAML output.
type yamlNumber json.Number

// MarshalYAML implements yaml.Marshaler.
func (n yamlNumber) MarshalYAML() (interface{}, error) {
	tag := "!!float"
	if IsIntegerLiteral(json.Number(n)) {
		tag = "!!int"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(n)}, nil
}

// EncodeYAML writes doc to w as a YAML document.
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(toYAML(doc)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func toYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = toYAML(item)
		}
		return out

	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = toYAML(item)
		}
		return out

	case json.Number:
		return yamlNumber(x)

	default:
		return v
	}
}
