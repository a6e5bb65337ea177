package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/CodexForgeBR/sysupdate/internal/config"
)

// Output formats accepted by -o.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want one of %v)", format, allowed)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeConfigYAML emits cfg as a YAML mapping in Keys order.
func writeConfigYAML(w io.Writer, cfg config.Config) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range cfg.Keys() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: cfg[key], Tag: "!!str"},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeConfigText(w io.Writer, cfg config.Config) {
	for _, key := range cfg.Keys() {
		fmt.Fprintf(w, "%s=%s\n", key, cfg[key])
	}
}
