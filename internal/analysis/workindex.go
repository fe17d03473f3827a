package analysis

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/kingrea/teamalys3r/internal/roster"
)

var (
	// ErrMemberNotFound is returned for an identifier without its own line.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrEmptyRoster is returned when there are no members to divide by.
	ErrEmptyRoster = errors.New("roster has no members")
)

// NotFoundMessage is printed when a work index is requested for an unknown
// member.
const NotFoundMessage = "Team member not found"

// MemberIndex pairs a member with its work index.
type MemberIndex struct {
	Member string
	Index  float64
}

// WorkIndex returns the length of member's list divided by the number of
// members. Duplicates and collaborators without a line of their own count in
// the numerator, so the result can exceed 1.
func WorkIndex(r *roster.Roster, member string) (float64, error) {
	if r.Len() == 0 {
		return 0, ErrEmptyRoster
	}
	list, ok := r.Collaborators(member)
	if !ok {
		return 0, ErrMemberNotFound
	}
	return float64(len(list)) / float64(r.Len()), nil
}

// WorkIndexes returns the index of every member in roster order. An empty
// roster yields no entries.
func WorkIndexes(r *roster.Roster) []MemberIndex {
	out := make([]MemberIndex, 0, r.Len())
	for _, member := range r.Members() {
		idx, err := WorkIndex(r, member)
		if err != nil {
			continue
		}
		out = append(out, MemberIndex{Member: member, Index: idx})
	}
	return out
}

// FormatIndex prints a float as the shortest decimal that round-trips,
// keeping a ".0" on integral values: 1.0, 0.5, 0.3333333333333333. Non-zero
// magnitudes below 1e-4 or from 1e16 up switch to exponent form (1e-05,
// 2.5e+16).
func FormatIndex(v float64) string {
	if a := math.Abs(v); a != 0 && !math.IsInf(a, 0) && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
