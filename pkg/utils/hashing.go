package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies a scored snapshot: the same canonical answers under
// the same scoring table version always hash the same.
func Fingerprint(canonicalAnswers []byte, configVersion string) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(configVersion))
	h.Write([]byte{0})
	h.Write(canonicalAnswers)
	return hex.EncodeToString(h.Sum(nil))
}
