package program

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sarchlab/ippcode/core"
)

// Format selects the source representation of a program.
type Format string

// List of source formats.
const (
	FormatAuto Format = "auto"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format. The empty string means
// FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", core.Errorf(core.ParameterError, "unknown source format %q", name)
	}
}

// FormatForPath guesses the format from a file extension, falling back to
// FormatAuto.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Load reads a program in the given format. FormatAuto treats the source
// as XML when its first non-space character is '<' and as YAML otherwise.
func Load(r io.Reader, format Format) ([]Instruction, error) {
	switch format {
	case FormatXML:
		return LoadXML(r)
	case FormatYAML:
		return LoadYAML(r)
	case FormatAuto, "":
	default:
		return nil, core.Errorf(core.ParameterError, "unknown source format %q", format)
	}

	br := bufio.NewReader(r)
	if sniffXML(br) {
		return LoadXML(br)
	}
	return LoadYAML(br)
}

func sniffXML(br *bufio.Reader) bool {
	buf, _ := br.Peek(512)
	text := strings.TrimPrefix(string(buf), "\ufeff")
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	return strings.HasPrefix(text, "<")
}
