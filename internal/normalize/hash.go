package normalize

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// ContentHash computes the hex-encoded SHA-256 of file content already in
// memory. The 835 pipeline always has the full buffer in hand, so hashing
// bytes beats re-reading the file.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", sum)
}

// RowHashFromValues computes a SHA-256 from a row number and ordered values,
// used to tag staged rows with a stable identity.
func RowHashFromValues(rowNum int64, values ...string) []byte {
	h := sha256.New()
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(rowNum))
	h.Write(buf)
	for _, v := range values {
		h.Write([]byte(strings.TrimSpace(v)))
		h.Write([]byte{0})
	}
	return h.Sum(nil)
}
