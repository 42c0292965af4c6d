package parse

import (
	"fmt"
	"strings"
)

// WhitespaceMode selects which side of a match IgnoreWhitespace trims.
type WhitespaceMode int

const (
	// Before trims leading whitespace. It is the zero value.
	Before WhitespaceMode = iota
	// After trims trailing whitespace.
	After
	// Around trims both sides.
	Around
)

// String implements fmt.Stringer.
func (m WhitespaceMode) String() string {
	switch m {
	case Before:
		return "before"
	case After:
		return "after"
	case Around:
		return "around"
	default:
		return fmt.Sprintf("WhitespaceMode(%d)", int(m))
	}
}

// ParseWhitespaceMode parses "before", "after" or "around" (case-insensitive).
// The empty string is Before.
func ParseWhitespaceMode(s string) (WhitespaceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "before":
		return Before, nil
	case "after":
		return After, nil
	case "around":
		return Around, nil
	default:
		return Before, fmt.Errorf("unknown whitespace mode %q (expected before, after or around)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m WhitespaceMode) MarshalText() ([]byte, error) {
	switch m {
	case Before, After, Around:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("invalid whitespace mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *WhitespaceMode) UnmarshalText(text []byte) error {
	mode, err := ParseWhitespaceMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m WhitespaceMode) trimsBefore() bool {
	return m == Before || m == Around
}

func (m WhitespaceMode) trimsAfter() bool {
	return m == After || m == Around
}

// IgnoreWhitespace returns a parser that discards whitespace on the side(s)
// of p selected by mode. The value is that of p.
// If p fails the leading whitespace is given back: the remainder is the
// original untrimmed input.
func IgnoreWhitespace[T any](p Parser[T], mode WhitespaceMode) Parser[T] {
	return func(input string) Result[T] {
		rest := input
		if mode.trimsBefore() {
			rest = AllWhitespace(rest).Rest
		}

		res := p(rest)
		if !res.OK {
			return Failure[T](input)
		}

		if mode.trimsAfter() {
			res.Rest = AllWhitespace(res.Rest).Rest
		}
		return res
	}
}
