package properties

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects how Write renders properties.
type Format string

const (
	FormatINI  Format = "ini"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatINI, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q, expected one of %s", name, formatNames())
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// document mirrors the file layout for the structured output formats.
type document struct {
	Core    *coreDocument    `json:"core,omitempty" yaml:"core,omitempty" toml:"core,omitempty"`
	Compute *computeDocument `json:"compute,omitempty" yaml:"compute,omitempty" toml:"compute,omitempty"`
}

type coreDocument struct {
	Project *string `json:"project,omitempty" yaml:"project,omitempty" toml:"project,omitempty"`
	Account *string `json:"account,omitempty" yaml:"account,omitempty" toml:"account,omitempty"`
}

type computeDocument struct {
	Zone   *string `json:"zone,omitempty" yaml:"zone,omitempty" toml:"zone,omitempty"`
	Region *string `json:"region,omitempty" yaml:"region,omitempty" toml:"region,omitempty"`
}

func newDocument(p Properties) document {
	var doc document

	if !p.core.empty() {
		doc.Core = &coreDocument{
			Project: cloneString(p.core.project),
			Account: cloneString(p.core.account),
		}
	}

	if !p.compute.empty() {
		doc.Compute = &computeDocument{}
		if zone, ok := p.Zone(); ok {
			value := zone.String()
			doc.Compute.Zone = &value
		}
		if region, ok := p.Region(); ok {
			value := region.String()
			doc.Compute.Region = &value
		}
	}

	return doc
}

// Write renders p to w in the given format.
func Write(w io.Writer, p Properties, format Format) error {
	switch format {
	case FormatINI, "":
		return Encode(w, p)
	case FormatJSON:
		data, err := json.MarshalIndent(newDocument(p), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(p)); err != nil {
			return fmt.Errorf("marshalling yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(newDocument(p)); err != nil {
			return fmt.Errorf("marshalling toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, expected one of %s", format, formatNames())
	}
}
