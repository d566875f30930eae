package dirscanner

import (
	"path/filepath"
	"strings"
)

var skippableExtensions = map[string]struct{}{
	".a":    {},
	".exe":  {},
	".gif":  {},
	".ico":  {},
	".jpeg": {},
	".jpg":  {},
	".mo":   {},
	".pdf":  {},
	".png":  {},
	".pyc":  {},
	".so":   {},
}

func skippable(name string) bool {
	_, found := skippableExtensions[strings.ToLower(filepath.Ext(name))]
	return found
}
