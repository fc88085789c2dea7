package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternSet is an immutable, ordered collection of compiled regular
// expressions tested as an OR predicate.
type PatternSet struct {
	patterns []*regexp.Regexp
}

// CompilePatterns compiles each pattern in order. The first pattern that
// fails to compile aborts the whole operation, with the offending pattern
// named in the error. An empty input yields an empty set, which matches
// nothing.
func CompilePatterns(patterns []string) (PatternSet, error) {
	var set PatternSet
	for _, p := range patterns {
		rx, err := regexp.Compile(p)
		if err != nil {
			return PatternSet{}, fmt.Errorf("invalid regex %q: %w", p, err)
		}
		set.patterns = append(set.patterns, rx)
	}
	return set, nil
}

// Match reports whether any pattern in the set matches anywhere within
// input. Patterns are unanchored unless they anchor themselves with ^/$.
func (s PatternSet) Match(input string) bool {
	for _, p := range s.patterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}

func (s PatternSet) Len() int {
	return len(s.patterns)
}

func (s PatternSet) String() string {
	var ss []string
	for _, p := range s.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}
