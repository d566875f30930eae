package sniff

import (
	"bytes"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/sniff/matchers"
)

type Kind string

const (
	CommonWord      Kind = "common-word"
	Sequence        Kind = "sequence"
	KeyboardPattern Kind = "keyboard-pattern"
)

// CommonWords is checked in order; the first word contained in the password
// is the one reported.
var CommonWords = []string{
	"password", "123456", "qwerty", "admin", "user", "pass", "test", "login", "secret",
}

const alphabeticSequencePattern = `(abc|bcd|cde|def|efg|fgh|ghi|hij|ijk|jkl|klm|lmn|mno|nop|opq|pqr|qrs|rst|stu|tuv|uvw|vwx|wxy|xyz)`
const numericSequencePattern = `(123|234|345|456|567|678|789|890)`
const keyboardPattern = `(qwerty|asdfgh|zxcvbn)`

type Violation struct {
	Kind  Kind
	Match string
}

//go:generate counterfeiter . Sniffer

type Sniffer interface {
	Sniff(lager.Logger, string) []Violation
}

type rule struct {
	kind    Kind
	word    string
	matcher matchers.Matcher
}

type sniffer struct {
	words []rule
	rules []rule
}

// NewSniffer reports at most one word violation, the first of words found in
// the password, followed by at most one violation per rule.
func NewSniffer(words []string, rules map[Kind]matchers.Matcher, order ...Kind) Sniffer {
	s := &sniffer{}

	for _, word := range words {
		s.words = append(s.words, rule{
			kind:    CommonWord,
			word:    word,
			matcher: matchers.Lowercased(matchers.Substring(word)),
		})
	}

	for _, kind := range order {
		if m, ok := rules[kind]; ok {
			s.rules = append(s.rules, rule{kind: kind, matcher: m})
		}
	}

	return s
}

func NewDefaultSniffer() Sniffer {
	return NewSniffer(
		CommonWords,
		map[Kind]matchers.Matcher{
			Sequence: matchers.Lowercased(matchers.Any(
				matchers.Format(alphabeticSequencePattern),
				matchers.Filter(
					matchers.Format(numericSequencePattern),
					"1", "2", "3", "4", "5", "6", "7", "8", "9",
				),
			)),
			KeyboardPattern: matchers.Lowercased(matchers.Format(keyboardPattern)),
		},
		Sequence,
		KeyboardPattern,
	)
}

func (s *sniffer) Sniff(logger lager.Logger, password string) []Violation {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	candidate := []byte(password)
	violations := []Violation{}

	for _, word := range s.words {
		if match, _, _ := word.matcher.Match(candidate); match {
			violations = append(violations, Violation{
				Kind:  word.kind,
				Match: word.word,
			})
			break
		}
	}

	for _, r := range s.rules {
		if match, start, end := r.matcher.Match(candidate); match {
			violations = append(violations, Violation{
				Kind:  r.kind,
				Match: string(bytes.ToLower(candidate)[start:end]),
			})
		}
	}

	logger.Debug("done", lager.Data{"violations": len(violations)})

	return violations
}
