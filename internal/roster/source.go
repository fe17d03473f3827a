package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrSourceNotFound marks a relation file that does not exist.
var ErrSourceNotFound = errors.New("roster: source not found")

// Source is the outcome of reading a relation file. Text is empty when the
// file is absent, so callers that choose to continue get an empty roster.
type Source struct {
	Path string
	Text string
	Err  error
}

// Load reads the whole file at path with line endings translated to "\n".
// It never fails outright: an unreadable path is reported through Source.Err.
func Load(path string) Source {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{Path: path, Err: fmt.Errorf("%w: %s", ErrSourceNotFound, path)}
		}
		return Source{Path: path, Err: fmt.Errorf("roster: read %s: %w", path, err)}
	}
	return Source{Path: path, Text: newlines.Replace(string(data))}
}

// Present reports whether the file was read.
func (s Source) Present() bool {
	return s.Err == nil
}

// NotFoundMessage is the one-line notice printed for an absent source.
func (s Source) NotFoundMessage() string {
	return "File not found: " + s.Path
}

// Message is the one-line notice printed when the source could not be read,
// or "" when it was. Paths that exist but cannot be read (directories,
// permission errors) get a notice of their own.
func (s Source) Message() string {
	switch {
	case s.Err == nil:
		return ""
	case errors.Is(s.Err, ErrSourceNotFound):
		return s.NotFoundMessage()
	default:
		return "Could not read: " + s.Path
	}
}
