package tree

import "strings"

// DefaultSeparator separates path segments unless a Path says otherwise.
const DefaultSeparator = '/'

// Path is a separator-delimited node address. The zero Path is empty and uses
// DefaultSeparator.
type Path struct {
	text string
	sep  byte
}

// NewPath returns a Path over text using sep as the segment separator.
func NewPath(text string, sep byte) Path {
	return Path{text: text, sep: sep}
}

func defaultPath(text string) Path {
	return Path{text: text, sep: DefaultSeparator}
}

// String returns the path text.
func (p Path) String() string { return p.text }

// Separator returns the segment separator.
func (p Path) Separator() byte {
	if p.sep == 0 {
		return DefaultSeparator
	}

	return p.sep
}

// IsEmpty reports whether the path has no text.
func (p Path) IsEmpty() bool { return p.text == "" }

// Join appends a segment to the path.
func (p Path) Join(segment string) Path {
	return Path{text: Join(p.text, segment, p.Separator()), sep: p.sep}
}

// Join concatenates two path texts with sep, omitting the separator when
// either side is empty.
func Join(prefix, suffix string, sep byte) string {
	switch {
	case prefix == "":
		return suffix
	case suffix == "":
		return prefix
	default:
		return prefix + string(sep) + suffix
	}
}

// WithFilter renders a segment with a bracketed value filter.
func WithFilter(name, filter string) string {
	if filter == "" {
		return name
	}

	return name + "[" + filter + "]"
}

type segment struct {
	name      string
	filter    string
	hasFilter bool
}

// Segments splits the path into its plain segment names, dropping filters.
func (p Path) Segments() ([]string, error) {
	segs, err := p.parse(false)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.name
	}

	return names, nil
}

func (p Path) parse(write bool) ([]segment, error) {
	sep := p.Separator()

	if p.text == "" || p.text[len(p.text)-1] == sep {
		return nil, &PathError{Path: p.text, Reason: "invalid path"}
	}

	parts := strings.Split(p.text, string(sep))
	segs := make([]segment, 0, len(parts))

	for _, part := range parts {
		seg, err := parseSegment(p.text, part)
		if err != nil {
			return nil, err
		}

		segs = append(segs, seg)
	}

	if write && segs[len(segs)-1].hasFilter {
		return nil, &PathError{Path: p.text, Reason: "last subpath cannot end with a '[]' filter"}
	}

	return segs, nil
}

func parseSegment(full, part string) (segment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		return segment{name: part}, nil
	}

	closing := strings.IndexByte(part[open+1:], ']')
	if closing < 0 {
		return segment{}, &PathError{Path: full, Reason: "missing closing bracket"}
	}

	closing += open + 1

	if closing == open+1 {
		return segment{}, &PathError{Path: full, Reason: "empty data expression in '[]'"}
	}

	if closing != len(part)-1 {
		return segment{}, &PathError{Path: full, Reason: "invalid path"}
	}

	return segment{
		name:      part[:open],
		filter:    part[open+1 : closing],
		hasFilter: true,
	}, nil
}
