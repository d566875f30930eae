package apply

import (
	"crypto"
	_ "crypto/sha256"
	"fmt"
	"io"

	update "github.com/inconshreveable/go-update"
)

// Apply replaces the running executable with the contents of r.
func Apply(r io.Reader, checksum []byte) error {
	return ApplyTo("", r, checksum)
}

// ApplyTo replaces the file at target with the contents of r once they match
// the SHA-256 checksum. A nil checksum skips verification. When the swap
// fails and the original cannot be restored the returned error says so.
func ApplyTo(target string, r io.Reader, checksum []byte) error {
	opts := update.Options{
		TargetPath: target,
	}

	if checksum != nil {
		opts.Checksum = checksum
		opts.Hash = crypto.SHA256
	}

	err := update.Apply(r, opts)
	if err != nil {
		if rerr := update.RollbackError(err); rerr != nil {
			return fmt.Errorf("update failed (%s) and the original could not be restored: %s", err, rerr)
		}

		return err
	}

	return nil
}
