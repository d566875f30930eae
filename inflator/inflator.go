package inflator

import (
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/mimetype"
)

//go:generate counterfeiter . Inflator

type Inflator interface {
	Inflate(logger lager.Logger, mime, archivePath, destination string) error
}

type inflator struct {
	extractors map[string]extractor.Extractor
}

func New() Inflator {
	return &inflator{
		extractors: map[string]extractor.Extractor{
			mimetype.Tar: extractor.NewTar(),
			mimetype.Tgz: extractor.NewTgz(),
			mimetype.Zip: extractor.NewZip(),
		},
	}
}

// Inflate extracts archivePath into destination and then replaces every
// archive found inside it with a "<name>-contents" directory. Nested archives
// that fail to extract are logged and left in place.
func (i *inflator) Inflate(logger lager.Logger, mime, archivePath, destination string) error {
	logger = logger.Session("inflate", lager.Data{"archive": archivePath})
	logger.Debug("starting")
	defer logger.Debug("done")

	if err := i.extract(mime, archivePath, destination); err != nil {
		logger.Error("extract-failed", err)
		return err
	}

	return i.inflateNested(logger, destination)
}

func (i *inflator) extract(mime, archivePath, destination string) error {
	e, ok := i.extractors[mime]
	if !ok {
		return fmt.Errorf("don't know how to extract %s", mime)
	}

	if err := os.MkdirAll(destination, 0755); err != nil {
		return err
	}

	return e.Extract(archivePath, destination)
}

func (i *inflator) inflateNested(logger lager.Logger, dir string) error {
	children, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, child := range children {
		path := filepath.Join(dir, child.Name())

		if child.IsDir() {
			if err := i.inflateNested(logger, path); err != nil {
				return err
			}
			continue
		}

		if !child.Type().IsRegular() {
			continue
		}

		mime, isArchive := mimetype.IsArchive(child.Name())
		if !isArchive {
			continue
		}

		contents := path + "-contents"
		if err := i.extract(mime, path, contents); err != nil {
			logger.Error("nested-extract-failed", err, lager.Data{"nested": path})
			continue
		}

		if err := os.Remove(path); err != nil {
			return err
		}

		if err := i.inflateNested(logger, contents); err != nil {
			return err
		}
	}

	return nil
}
