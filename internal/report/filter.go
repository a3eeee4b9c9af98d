package report

import "regexp"

// MatchAllPattern is the pattern an empty project filter stands for.
const MatchAllPattern = ".*"

// ProjectFilter restricts project totals to names matching a regular
// expression. A nil *ProjectFilter matches every name.
type ProjectFilter struct {
	pattern string
	re      *regexp.Regexp
}

// NewProjectFilter compiles pattern. An empty pattern matches everything.
// Compilation errors are reported as *InvalidFilterError.
func NewProjectFilter(pattern string) (*ProjectFilter, error) {
	if pattern == "" {
		pattern = MatchAllPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidFilterError{Pattern: pattern, Err: err}
	}
	return &ProjectFilter{pattern: pattern, re: re}, nil
}

// Match reports whether a project name passes the filter.
func (f *ProjectFilter) Match(name string) bool {
	if f == nil || f.re == nil {
		return true
	}
	return f.re.MatchString(name)
}

// MatchesAll reports whether the filter is the default match-everything filter.
func (f *ProjectFilter) MatchesAll() bool {
	return f == nil || f.pattern == MatchAllPattern
}

func (f *ProjectFilter) String() string {
	if f == nil {
		return MatchAllPattern
	}
	return f.pattern
}
