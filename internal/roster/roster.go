// Package roster reads collaboration relation files.
//
// A relation file lists, one member per line, who that member worked with:
//
//	ana->bo,cy
//	bo->ana
//
// The parsed Roster keeps members in the order their first line appears and
// keeps every collaborator list exactly as written: no trimming, no
// deduplication and no symmetry is implied.
package roster

// Roster maps each member to the ordered list of members they worked with.
// A Roster is not modified after Parse returns it.
type Roster struct {
	members       []string
	collaborators map[string][]string
}

func newRoster() *Roster {
	return &Roster{collaborators: map[string][]string{}}
}

// set records a member's list. Re-declaring a member replaces its list but
// keeps the position of the first declaration.
func (r *Roster) set(member string, collaborators []string) {
	if _, ok := r.collaborators[member]; !ok {
		r.members = append(r.members, member)
	}
	r.collaborators[member] = collaborators
}

// Len returns the number of members.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.members)
}

// Members returns the member identifiers in file order.
func (r *Roster) Members() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.members))
	copy(out, r.members)
	return out
}

// Has reports whether member has its own line in the file.
func (r *Roster) Has(member string) bool {
	if r == nil {
		return false
	}
	_, ok := r.collaborators[member]
	return ok
}

// Collaborators returns a copy of the list declared for member.
func (r *Roster) Collaborators(member string) ([]string, bool) {
	if r == nil {
		return nil, false
	}
	list, ok := r.collaborators[member]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

// WorkedWith reports whether other appears in member's list.
func (r *Roster) WorkedWith(member, other string) bool {
	if r == nil {
		return false
	}
	for _, c := range r.collaborators[member] {
		if c == other {
			return true
		}
	}
	return false
}
