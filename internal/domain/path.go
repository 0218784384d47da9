package domain

import (
	"regexp"
	"strings"
)

var (
	driveLetter = regexp.MustCompile(`^[A-Za-z]:`)
	uriScheme   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)
)

// FilePath is a file path in canonical form. Two spellings of the same
// relative path (different separators, redundant slashes, "." segments)
// produce the same FilePath.
type FilePath struct {
	canonical string
}

// NewFilePath canonicalizes raw. It never fails: text that is not a
// recognizable path normalizes to (a trimmed form of) itself. Normalizing
// a canonical path returns it unchanged.
func NewFilePath(raw string) FilePath {
	return FilePath{canonical: normalizePath(raw)}
}

func (p FilePath) String() string { return p.canonical }

// IsRelative is false for paths starting with a separator, a drive letter
// or a URI scheme.
func (p FilePath) IsRelative() bool {
	return isRelativePath(p.canonical)
}

func normalizePath(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\`, "/")

	var prefix string
	if m := uriScheme.FindString(s); m != "" {
		prefix, s = m, s[len(m):]
	}

	rooted := strings.HasPrefix(s, "/")
	segments := strings.Split(s, "/")
	kept := segments[:0]
	for _, seg := range segments {
		if seg == "" || seg == "." {
			continue
		}
		kept = append(kept, seg)
	}

	out := strings.Join(kept, "/")
	if rooted {
		out = "/" + out
	}
	if out == "" && prefix == "" {
		// "./" and similar collapse to the current directory.
		return "."
	}
	out = prefix + out

	// Dropping segments can expose surrounding whitespace ("./ foo");
	// normalize again until the result is stable.
	if trimmed := strings.TrimSpace(out); trimmed != out {
		return normalizePath(trimmed)
	}
	return out
}

func isRelativePath(p string) bool {
	switch {
	case p == "":
		return true
	case strings.HasPrefix(p, "/"):
		return false
	case driveLetter.MatchString(p):
		return false
	case uriScheme.MatchString(p):
		return false
	}
	return true
}
