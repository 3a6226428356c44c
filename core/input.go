package core

import (
	"bufio"
	"io"
	"strings"
)

// Input is the source the READ instruction pulls values from. Each read
// consumes one item; ok is false once the input is exhausted.
type Input interface {
	ReadString() (s string, ok bool)
	ReadInt() (i int64, ok bool)
	ReadBool() (b bool, ok bool)
}

// LineInput reads one item per line from an io.Reader. Lines have no
// length limit.
type LineInput struct {
	reader *bufio.Reader
}

// NewLineInput creates an Input over r.
func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{reader: bufio.NewReader(r)}
}

func (in *LineInput) next() (string, bool) {
	if in.reader == nil {
		return "", false
	}

	line, err := in.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// ReadString returns the next line verbatim.
func (in *LineInput) ReadString() (string, bool) {
	return in.next()
}

// ReadInt parses the next line as an integer literal.
func (in *LineInput) ReadInt() (int64, bool) {
	line, ok := in.next()
	if !ok {
		return 0, false
	}
	return parseInt(line)
}

// ReadBool returns true when the next line is "true" in any letter case,
// false for any other line.
func (in *LineInput) ReadBool() (bool, bool) {
	line, ok := in.next()
	if !ok {
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(line), "true"), true
}

// readValue reads one value of the requested kind. Unparsable or
// exhausted input yields nil.
func readValue(in Input, kind ValueKind) Value {
	if in == nil {
		return Nil()
	}

	switch kind {
	case KindInt:
		if i, ok := in.ReadInt(); ok {
			return Int(i)
		}
	case KindBool:
		if b, ok := in.ReadBool(); ok {
			return Bool(b)
		}
	case KindString:
		if s, ok := in.ReadString(); ok {
			return Str(s)
		}
	}

	return Nil()
}
