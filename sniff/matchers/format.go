package matchers

import "regexp"

type formatMatcher struct {
	r *regexp.Regexp
}

func Format(format string) Matcher {
	return &formatMatcher{
		r: regexp.MustCompile(format),
	}
}

func (m *formatMatcher) Match(candidate []byte) (bool, int, int) {
	index := m.r.FindIndex(candidate)
	if index == nil {
		return false, 0, 0
	}

	return true, index[0], index[1]
}
