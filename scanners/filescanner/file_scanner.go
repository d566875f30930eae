package filescanner

import (
	"bufio"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/scanners"
)

type FileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

func New(r io.Reader, path string) *FileScanner {
	return &FileScanner{
		path:         path,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *FileScanner) Scan(logger lager.Logger) bool {
	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Session("file-scanner", lager.Data{"path": s.path}).Error("bufio-error", err)
		s.err = err
		return false
	}

	if success {
		s.lineNumber++
	}

	return success
}

// Line strips a trailing carriage return so that CRLF lists produce the
// same passwords as LF lists.
func (s *FileScanner) Line() scanners.Line {
	return scanners.Line{
		Path:       s.path,
		LineNumber: s.lineNumber,
		Content:    strings.TrimSuffix(s.bufioScanner.Text(), "\r"),
	}
}

func (s *FileScanner) Err() error {
	return s.err
}

// ScanAll hands every line of r to handler and stops at the first error.
func ScanAll(logger lager.Logger, r io.Reader, path string, handler func(lager.Logger, scanners.Line) error) error {
	scanner := New(r, path)

	for scanner.Scan(logger) {
		if err := handler(logger, scanner.Line()); err != nil {
			return err
		}
	}

	return scanner.Err()
}
