package inflator

import "os"

//go:generate counterfeiter . ScratchSpace

type ScratchSpace interface {
	Make() (string, error)
}

type scratch struct {
	pattern string
}

// NewScratch makes a fresh temporary directory on every call to Make.
func NewScratch(pattern string) ScratchSpace {
	return &scratch{pattern: pattern}
}

func (s *scratch) Make() (string, error) {
	return os.MkdirTemp("", s.pattern)
}
