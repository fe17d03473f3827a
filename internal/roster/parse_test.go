package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relations(r *Roster) []Relation {
	out := make([]Relation, 0, r.Len())
	for _, m := range r.Members() {
		list, _ := r.Collaborators(m)
		out = append(out, Relation{Member: m, Collaborators: list})
	}
	return out
}

func TestParsePreservesOrder(t *testing.T) {
	want := []Relation{
		{Member: "A", Collaborators: []string{"B", "C"}},
		{Member: "B", Collaborators: []string{"A"}},
	}
	for name, text := range map[string]string{
		"lf":   "A->B,C\nB->A\n",
		"crlf": "A->B,C\r\nB->A\r\n",
		"cr":   "A->B,C\rB->A\r",
	} {
		t.Run(name, func(t *testing.T) {
			r, err := Parse(text)
			require.NoError(t, err)
			if diff := cmp.Diff(want, relations(r)); diff != "" {
				t.Fatalf("roster mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCRLFLineNumbers(t *testing.T) {
	_, err := Parse("A->B\r\n\r\nbroken\r\n")
	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 3, malformed.Line)
	assert.Equal(t, "broken", malformed.Text)
}

func TestParseIsPure(t *testing.T) {
	text := "ana->bo,cy\nbo->ana\ncy->ana,bo,ana\n"
	first, err := Parse(text)
	require.NoError(t, err)
	second, err := Parse(text)
	require.NoError(t, err)
	if diff := cmp.Diff(relations(first), relations(second)); diff != "" {
		t.Fatalf("parsing twice differs:\n%s", diff)
	}
}

func TestParseKeepsIdentifiersVerbatim(t *testing.T) {
	r, err := Parse(" ana -> bo, cy,bo\n")
	require.NoError(t, err)
	assert.Equal(t, []string{" ana "}, r.Members())
	list, ok := r.Collaborators(" ana ")
	require.True(t, ok)
	assert.Equal(t, []string{" bo", " cy", "bo"}, list)
}

func TestParseLastDeclarationWins(t *testing.T) {
	r, err := Parse("A->B\nB->A\nA->C,D\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, r.Members())
	list, _ := r.Collaborators("A")
	assert.Equal(t, []string{"C", "D"}, list)
}

func TestParseSkipsOnlyEmptyLines(t *testing.T) {
	r, err := Parse("\nA->B\n\n\nB->A")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	_, err = Parse("A->B\n   \nB->A\n")
	require.Error(t, err)
	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, "   ", malformed.Text)
}

func TestParseMalformedLine(t *testing.T) {
	_, err := Parse("A->B\nB->A\nC\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedLine))
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseEmptyText(t *testing.T) {
	r, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Members())
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Relation
	}{
		{"single", "X->Y", Relation{Member: "X", Collaborators: []string{"Y"}}},
		{"empty list", "X->", Relation{Member: "X", Collaborators: []string{""}}},
		{"second separator ignored", "X->Y->Z", Relation{Member: "X", Collaborators: []string{"Y"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLine(tc.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseLine(%q) (-want +got):\n%s", tc.in, diff)
			}
		})
	}

	_, err := ParseLine("no separator")
	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 0, malformed.Line)
}

func TestRosterAccessorsReturnCopies(t *testing.T) {
	r, err := Parse("A->B,A\n")
	require.NoError(t, err)

	members := r.Members()
	members[0] = "Z"
	list, _ := r.Collaborators("A")
	list[0] = "Z"

	assert.Equal(t, []string{"A"}, r.Members())
	assert.True(t, r.WorkedWith("A", "B"))
	assert.True(t, r.WorkedWith("A", "A"))
	assert.False(t, r.WorkedWith("A", "Z"))
	assert.False(t, r.Has("B"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "team.txt")
	require.NoError(t, os.WriteFile(path, []byte("X->Y\nY->X\n"), 0o644))

	src := Load(path)
	require.True(t, src.Present())
	assert.Equal(t, "X->Y\nY->X\n", src.Text)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	src = Load(empty)
	assert.True(t, src.Present())
	assert.Equal(t, "", src.Text)

	missing := filepath.Join(dir, "missing.txt")
	src = Load(missing)
	assert.False(t, src.Present())
	assert.True(t, errors.Is(src.Err, ErrSourceNotFound))
	assert.Equal(t, "", src.Text)
	assert.Equal(t, "File not found: "+missing, src.NotFoundMessage())

	assert.Equal(t, src.NotFoundMessage(), src.Message())

	crlf := filepath.Join(dir, "crlf.txt")
	require.NoError(t, os.WriteFile(crlf, []byte("X->Y\r\nY->X\r\n"), 0o644))
	src = Load(crlf)
	require.True(t, src.Present())
	assert.Equal(t, "X->Y\nY->X\n", src.Text)
	assert.Equal(t, "", src.Message())

	src = Load(dir)
	assert.False(t, src.Present())
	assert.False(t, errors.Is(src.Err, ErrSourceNotFound))
	assert.Equal(t, "Could not read: "+dir, src.Message())
}
