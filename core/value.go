package core

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValueKind identifies the dynamic type of a Value.
type ValueKind uint8

// List of value kinds. The zero kind is an uninitialized slot.
const (
	KindUndefined ValueKind = iota
	KindInt
	KindBool
	KindString
	KindNil
)

// String returns the type name as reported by the TYPE instruction.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNil:
		return "nil"
	default:
		return ""
	}
}

// ParseKind maps an operand type name to a value kind.
func ParseKind(name string) (ValueKind, bool) {
	switch name {
	case "int":
		return KindInt, true
	case "bool":
		return KindBool, true
	case "string":
		return KindString, true
	case "nil":
		return KindNil, true
	default:
		return KindUndefined, false
	}
}

// Value is a tagged runtime value. The zero Value is Undefined.
type Value struct {
	kind ValueKind
	i    int64
	b    bool
	s    string
}

// Int creates an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Str creates a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Nil returns the nil value.
func Nil() Value { return Value{kind: KindNil} }

// Kind returns the dynamic type of the value.
func (v Value) Kind() ValueKind { return v.kind }

// TypeName returns the name of the dynamic type, empty when undefined.
func (v Value) TypeName() string { return v.kind.String() }

// IsDefined reports whether the value has been assigned.
func (v Value) IsDefined() bool { return v.kind != KindUndefined }

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsInt returns the integer payload.
func (v Value) AsInt() int64 { return v.i }

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.b }

// AsString returns the string payload.
func (v Value) AsString() string { return v.s }

// Len returns the length of a string value in Unicode scalar values.
func (v Value) Len() int { return utf8.RuneCountInString(v.s) }

// String formats the value the way WRITE prints it.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// GoString formats the value with its type, as in the source notation.
func (v Value) GoString() string {
	if v.kind == KindUndefined {
		return "<undefined>"
	}
	if v.kind == KindNil {
		return "nil@nil"
	}
	return v.kind.String() + "@" + v.String()
}

// Equal reports whether v and w are equal. Values of different types
// are only comparable when one of them is nil.
func (v Value) Equal(w Value) (bool, error) {
	a, b := v, w

	if a.kind != b.kind {
		if a.kind == KindNil || b.kind == KindNil {
			return false, nil
		}
		return false, Errorf(OperandTypeError,
			"cannot compare %s with %s", a.TypeName(), b.TypeName())
	}

	switch a.kind {
	case KindInt:
		return a.i == b.i, nil
	case KindBool:
		return a.b == b.b, nil
	case KindString:
		return a.s == b.s, nil
	case KindNil:
		return true, nil
	default:
		return false, Errorf(ValueError, "comparison of undefined values")
	}
}

// Compare orders two like-typed int, bool or string values. It returns
// -1, 0 or +1.
func Compare(a, b Value) (int, error) {
	if a.kind == KindNil || b.kind == KindNil {
		return 0, Errorf(OperandTypeError, "nil can only be compared for equality")
	}
	if a.kind != b.kind {
		return 0, Errorf(OperandTypeError,
			"cannot compare %s with %s", a.TypeName(), b.TypeName())
	}

	switch a.kind {
	case KindInt:
		switch {
		case a.i < b.i:
			return -1, nil
		case a.i > b.i:
			return 1, nil
		}
		return 0, nil
	case KindBool:
		switch {
		case !a.b && b.b:
			return -1, nil
		case a.b && !b.b:
			return 1, nil
		}
		return 0, nil
	case KindString:
		return strings.Compare(a.s, b.s), nil
	default:
		return 0, Errorf(ValueError, "comparison of undefined values")
	}
}

// ParseValue constructs a value from an operand kind and its raw text.
// A literal that does not match its kind is an invalid structure.
func ParseValue(kind ValueKind, raw string) (Value, error) {
	switch kind {
	case KindInt:
		i, ok := parseInt(raw)
		if !ok {
			return Value{}, Errorf(InvalidSourceStructure, "invalid int literal %q", raw)
		}
		return Int(i), nil
	case KindBool:
		switch raw {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Value{}, Errorf(InvalidSourceStructure, "invalid bool literal %q", raw)
	case KindString:
		return Str(raw), nil
	case KindNil:
		if raw != "nil" {
			return Value{}, Errorf(InvalidSourceStructure, "invalid nil literal %q", raw)
		}
		return Nil(), nil
	default:
		return Value{}, Errorf(InvalidSourceStructure, "no literal form for kind %d", kind)
	}
}

// parseInt accepts decimal, 0x hexadecimal and 0o octal integers with an
// optional sign.
func parseInt(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Contains(s, "_") {
		return 0, false
	}

	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return 0, false
	}

	// A bare leading zero is decimal, not the legacy octal form.
	base := 10
	lower := strings.ToLower(digits)
	switch {
	case strings.HasPrefix(lower, "0x"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(lower, "0o"):
		base = 8
		digits = digits[2:]
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}

	if strings.HasPrefix(s, "-") {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}

	return int64(u), true
}
