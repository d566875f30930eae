package breach

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

const PrefixLength = 5

// Hash splits the SHA-1 digest of the password into the prefix sent to the
// range API and the upper-case suffix matched locally.
func Hash(password string) (string, string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	return digest[:PrefixLength], digest[PrefixLength:]
}
