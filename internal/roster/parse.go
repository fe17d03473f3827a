package roster

import (
	"errors"
	"fmt"
	"strings"
)

const (
	relationSeparator     = "->"
	collaboratorSeparator = ","
)

// ErrMalformedLine is matched by every *MalformedLineError.
var ErrMalformedLine = errors.New("roster: malformed line")

// MalformedLineError describes a non-empty line without the "->" separator.
type MalformedLineError struct {
	Line int // 1-based; 0 when the text was parsed on its own
	Text string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("roster: line %d: missing %q separator in %q", e.Line, relationSeparator, e.Text)
	}
	return fmt.Sprintf("roster: missing %q separator in %q", relationSeparator, e.Text)
}

// Is lets errors.Is(err, ErrMalformedLine) match.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// Relation is one parsed line.
type Relation struct {
	Member        string
	Collaborators []string
}

// ParseLine parses a single "member->a,b,c" line. Text after a second "->"
// is ignored.
func ParseLine(text string) (Relation, error) {
	member, rest, ok := strings.Cut(text, relationSeparator)
	if !ok {
		return Relation{}, &MalformedLineError{Text: text}
	}
	field, _, _ := strings.Cut(rest, relationSeparator)
	return Relation{
		Member:        member,
		Collaborators: strings.Split(field, collaboratorSeparator),
	}, nil
}

// newlines translates "\r\n" and lone "\r" line endings to "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse builds a Roster from the full text of a relation file. Lines may end
// in "\n", "\r\n" or "\r". Empty lines are skipped; a whitespace-only line is
// malformed like any other line without a separator. Parsing stops at the
// first malformed line.
func Parse(text string) (*Roster, error) {
	r := newRoster()
	if text == "" {
		return r, nil
	}
	for i, line := range strings.Split(newlines.Replace(text), "\n") {
		if line == "" {
			continue
		}
		rel, err := ParseLine(line)
		if err != nil {
			var malformed *MalformedLineError
			if errors.As(err, &malformed) {
				malformed.Line = i + 1
			}
			return nil, err
		}
		r.set(rel.Member, rel.Collaborators)
	}
	return r, nil
}
