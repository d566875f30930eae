package matchers

import "bytes"

// Filter only consults the submatcher when the candidate contains at least one
// of the filter strings.
func Filter(submatcher Matcher, filters ...string) Matcher {
	fs := make([][]byte, len(filters))

	for i := range filters {
		fs[i] = []byte(filters[i])
	}

	return &filter{
		matcher: submatcher,
		filters: fs,
	}
}

type filter struct {
	matcher Matcher
	filters [][]byte
}

func (f *filter) Match(candidate []byte) (bool, int, int) {
	for i := range f.filters {
		if bytes.Contains(candidate, f.filters[i]) {
			return f.matcher.Match(candidate)
		}
	}

	return false, 0, 0
}
