package matchers

import "bytes"

// Lowercased folds ASCII and Unicode letters to lower case before handing the
// candidate to the wrapped matcher. Offsets refer to the folded candidate.
func Lowercased(submatcher Matcher) Matcher {
	return &lowercased{
		matcher: submatcher,
	}
}

type lowercased struct {
	matcher Matcher
}

func (l *lowercased) Match(candidate []byte) (bool, int, int) {
	return l.matcher.Match(bytes.ToLower(candidate))
}
