package mimetype

import "strings"

const (
	Tar = "application/x-tar"
	Tgz = "application/x-gzip"
	Zip = "application/zip"
)

var archiveSuffixes = []struct {
	suffix string
	mime   string
}{
	{".tar.gz", Tgz},
	{".tgz", Tgz},
	{".tar", Tar},
	{".zip", Zip},
	{".jar", Zip},
}

func IsArchive(filename string) (string, bool) {
	lower := strings.ToLower(filename)

	for _, a := range archiveSuffixes {
		if strings.HasSuffix(lower, a.suffix) {
			return a.mime, true
		}
	}

	return "", false
}
