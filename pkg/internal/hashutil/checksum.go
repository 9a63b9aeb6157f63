package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

const prefix = "sha256:"

// CalculateChecksum calculates the SHA256 checksum of data
func CalculateChecksum(data []byte) string {
	return fmt.Sprintf("%s%x", prefix, sha256.Sum256(data))
}

// Fingerprint hashes an ordered list of lines. Lines are joined with a
// newline so the same lines always produce the same fingerprint.
func Fingerprint(lines []string) string {
	return CalculateChecksum([]byte(strings.Join(lines, "\n")))
}
