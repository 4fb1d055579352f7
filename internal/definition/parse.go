package definition

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"enigmasim/internal/machine"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// Raw structures shared by both encodings after decoding.

type rawDefinition struct {
	ABC         string         `yaml:"abc"`
	RotorsCount int            `yaml:"rotors-count"`
	Rotors      []rawRotor     `yaml:"rotors"`
	Reflectors  []rawReflector `yaml:"reflectors"`
}

type rawRotor struct {
	ID          int              `yaml:"id" xml:"id,attr"`
	Notch       int              `yaml:"notch" xml:"notch,attr"`
	Positioning []rawPositioning `yaml:"positioning" xml:"BTE-Positioning"`
}

type rawPositioning struct {
	Right string `yaml:"right" xml:"right,attr"`
	Left  string `yaml:"left" xml:"left,attr"`
}

type rawReflector struct {
	ID      string       `yaml:"id" xml:"id,attr"`
	Reflect []rawReflect `yaml:"reflect" xml:"BTE-Reflect"`
}

type rawReflect struct {
	Input  int `yaml:"input" xml:"input,attr"`
	Output int `yaml:"output" xml:"output,attr"`
}

type rawXMLEnigma struct {
	XMLName     xml.Name       `xml:"BTE-Enigma"`
	RotorsCount int            `xml:"rotors-count,attr"`
	ABC         string         `xml:"BTE-ABC"`
	Rotors      []rawRotor     `xml:"BTE-Rotors>BTE-Rotor"`
	Reflectors  []rawReflector `xml:"BTE-Reflectors>BTE-Reflector"`
}

// LoadFile reads and validates a definition file. The format follows the
// extension (.yaml, .yml, .xml) or, failing that, the content.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	format := DetectFormat(filepath.Ext(path), data)
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.name = path
	return def, nil
}

// DetectFormat picks a format from a file extension, falling back to the
// first non-space byte of data.
func DetectFormat(ext string, data []byte) Format {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".xml":
		return FormatXML
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("<")) {
		return FormatXML
	}
	return FormatYAML
}

// Parse decodes and validates a definition document.
func Parse(data []byte, format Format) (*Definition, error) {
	var raw rawDefinition
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, machine.Wrap(machine.InvalidDefinition, err, "yaml parse")
		}
	case FormatXML:
		var x rawXMLEnigma
		if err := xml.Unmarshal(data, &x); err != nil {
			return nil, machine.Wrap(machine.InvalidDefinition, err, "xml parse")
		}
		raw = rawDefinition{
			ABC:         x.ABC,
			RotorsCount: x.RotorsCount,
			Rotors:      x.Rotors,
			Reflectors:  x.Reflectors,
		}
	default:
		return nil, machine.Errorf(machine.InvalidDefinition, "unknown format %q", format)
	}
	return build(&raw)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
