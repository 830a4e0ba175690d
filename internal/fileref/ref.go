package fileref

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Ref is one parsed input record: a file path, an optional 1-based line
// number (0 means none) and an optional match string to highlight within
// that line. Refs are created once at startup and are read-only afterwards.
type Ref struct {
	Path  string
	Line  int
	Match string
}

// String renders the record back in its input form.
func (r Ref) String() string {
	var b strings.Builder
	b.WriteString(r.Path)
	if r.Line > 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(r.Line))
	}
	if r.Match != "" {
		b.WriteString(":")
		b.WriteString(r.Match)
	}
	return b.String()
}

// Parse converts a raw "path[:line][:match]" record into a Ref.
//
// The field after the path is taken as a line number when it parses as a
// positive integer, otherwise as the match string. With three fields a
// non-numeric middle field fails soft: everything after the path becomes
// the match string. Whether the path exists is not checked here; display
// handles that.
func Parse(s string) Ref {
	parts := strings.SplitN(s, ":", 3)

	ref := Ref{Path: parts[0]}
	switch len(parts) {
	case 2:
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			ref.Line = n
		} else {
			ref.Match = parts[1]
		}
	case 3:
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			ref.Line = n
			ref.Match = parts[2]
		} else {
			ref.Match = parts[1] + ":" + parts[2]
		}
	}
	return ref
}

// ParseAll parses command-line arguments into Refs, dropping empty entries.
func ParseAll(args []string) []Ref {
	refs := make([]Ref, 0, len(args))
	for _, arg := range args {
		if arg == "" {
			continue
		}
		if ref := Parse(arg); ref.Path != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// ParseReader parses separator-delimited records from r, typically piped
// output of grep -Hn or rg --line-number. Records are newline-delimited, or
// NUL-delimited when nullSep is set (find -print0, rg -0 append a trailing
// NUL, which is tolerated). Empty records are skipped.
func ParseReader(r io.Reader, nullSep bool) ([]Ref, error) {
	sep := byte('\n')
	if nullSep {
		sep = 0
	}

	var refs []Ref
	br := bufio.NewReader(r)
	for {
		rec, err := br.ReadString(sep)
		rec = strings.TrimSuffix(rec, string(sep))
		if !nullSep {
			rec = strings.TrimSuffix(rec, "\r")
		}
		if rec != "" {
			if ref := Parse(rec); ref.Path != "" {
				refs = append(refs, ref)
			}
		}
		if err == io.EOF {
			return refs, nil
		}
		if err != nil {
			return refs, err
		}
	}
}
