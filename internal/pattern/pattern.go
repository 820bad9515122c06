// Package pattern implements the glob and regex predicate families used
// by the filter cascade to match file names and relative paths.
package pattern

import (
	"fmt"
	"path"
	"regexp"

	"github.com/gobwas/glob"
)

// Kind selects which predicate family a Matcher uses.
type Kind string

const (
	KindGlob  Kind = "glob"
	KindRegex Kind = "regex"
)

// Target selects whether a Matcher compares against the file's basename
// or its slash-normalized relative path.
type Target string

const (
	TargetName Target = "name"
	TargetPath Target = "path"
)

// Matcher is a compiled (kind, pattern) predicate, grounded in weka-locar's
// glob.Glob usage for include/exclude filter lists.
type Matcher struct {
	kind    Kind
	target  Target
	raw     string
	g       glob.Glob
	re      *regexp.Regexp
}

// Compile builds a Matcher. Glob patterns use '/' as the path separator
// so that '*' does not cross directory boundaries when target is path;
// name-target globs compile without a separator so '*' matches freely
// within the basename.
func Compile(kind Kind, target Target, raw string) (*Matcher, error) {
	m := &Matcher{kind: kind, target: target, raw: raw}
	switch kind {
	case KindGlob:
		var g glob.Glob
		var err error
		if target == TargetPath {
			g, err = glob.Compile(raw, '/')
		} else {
			g, err = glob.Compile(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", raw, err)
		}
		m.g = g
	case KindRegex:
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("compile regex %q: %w", raw, err)
		}
		m.re = re
	default:
		return nil, fmt.Errorf("unknown pattern kind %q", kind)
	}
	return m, nil
}

// Target reports whether this matcher applies to the basename or the
// relative path.
func (m *Matcher) Target() Target { return m.target }

// MatchName tests a basename against a name-target matcher.
func (m *Matcher) MatchName(name string) bool {
	return m.match(name)
}

// MatchPath tests a slash-normalized relative path against a path-target
// matcher.
func (m *Matcher) MatchPath(relPath string) bool {
	return m.match(path.Clean(relPath))
}

func (m *Matcher) match(s string) bool {
	switch m.kind {
	case KindGlob:
		return m.g.Match(s)
	case KindRegex:
		return m.re.MatchString(s)
	default:
		return false
	}
}

func (m *Matcher) String() string {
	return fmt.Sprintf("%s:%s:%s", m.kind, m.target, m.raw)
}
