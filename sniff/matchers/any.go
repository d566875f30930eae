package matchers

// Any reports the match of the first submatcher, in argument order, that
// matches the candidate.
func Any(submatchers ...Matcher) Matcher {
	return &anyMatcher{
		matchers: submatchers,
	}
}

type anyMatcher struct {
	matchers []Matcher
}

func (a *anyMatcher) Match(candidate []byte) (bool, int, int) {
	for _, matcher := range a.matchers {
		if match, start, end := matcher.Match(candidate); match {
			return true, start, end
		}
	}

	return false, 0, 0
}
