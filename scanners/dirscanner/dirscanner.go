package dirscanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pw-alert/inflator"
	"github.com/pivotal-cf/pw-alert/mimetype"
	"github.com/pivotal-cf/pw-alert/scanners"
	"github.com/pivotal-cf/pw-alert/scanners/filescanner"
)

type Handler func(lager.Logger, scanners.Line) error

type DirScanner struct {
	handler  Handler
	inflator inflator.Inflator
	scratch  inflator.ScratchSpace
}

func New(handler Handler, inflate inflator.Inflator, scratch inflator.ScratchSpace) *DirScanner {
	return &DirScanner{
		handler:  handler,
		inflator: inflate,
		scratch:  scratch,
	}
}

// Scan hands every line of every list under path to the handler. Archives
// are inflated into scratch space and walked in turn; lines found inside them
// keep the archive's path as a prefix. Files that cannot be read are skipped
// and reported together once the walk has finished. A handler error stops the
// walk immediately.
func (s *DirScanner) Scan(logger lager.Logger, path string) error {
	logger = logger.Session("dir-scan", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	var skipped error
	err := s.walk(logger, path, path, &skipped)
	if err != nil {
		return err
	}

	return skipped
}

// ScanFile treats a single path like a directory holding only that file.
func (s *DirScanner) ScanFile(logger lager.Logger, path string) error {
	logger = logger.Session("file-scan", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	var skipped error
	err := s.visit(logger, path, path, &skipped)
	if err != nil {
		return err
	}

	return skipped
}

func (s *DirScanner) walk(logger lager.Logger, root, displayRoot string, skipped *error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("walk-failed", err, lager.Data{"entry": path})
			*skipped = multierror.Append(*skipped, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || skippable(d.Name()) {
			return nil
		}

		display := displayRoot
		if rel, err := filepath.Rel(root, path); err == nil && rel != "." {
			display = filepath.Join(displayRoot, rel)
		}

		return s.visit(logger, path, display, skipped)
	})
}

func (s *DirScanner) visit(logger lager.Logger, path, display string, skipped *error) error {
	if mime, isArchive := mimetype.IsArchive(path); isArchive {
		return s.visitArchive(logger, mime, path, display, skipped)
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("open-failed", err, lager.Data{"entry": path})
		*skipped = multierror.Append(*skipped, err)
		return nil
	}
	defer f.Close()

	var handlerErr error
	err = filescanner.ScanAll(logger, f, display, func(logger lager.Logger, line scanners.Line) error {
		handlerErr = s.handler(logger, line)
		return handlerErr
	})
	if handlerErr != nil {
		return handlerErr
	}
	if err != nil {
		*skipped = multierror.Append(*skipped, err)
	}

	return nil
}

func (s *DirScanner) visitArchive(logger lager.Logger, mime, path, display string, skipped *error) error {
	dest, err := s.scratch.Make()
	if err != nil {
		return err
	}
	defer os.RemoveAll(dest)

	if err := s.inflator.Inflate(logger, mime, path, dest); err != nil {
		*skipped = multierror.Append(*skipped, err)
		return nil
	}

	return s.walk(logger, dest, display, skipped)
}
