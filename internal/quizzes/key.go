package quizzes

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/quizforge/backend/internal/models"
)

// ContentKey identifies a generation request: BLAKE2b-256 over difficulty,
// seed and text, hex encoded. Unseeded requests hash a distinct marker so
// they never share a key with seed 0.
func ContentKey(difficulty models.Difficulty, seed *int64, text string) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(difficulty))
	h.Write([]byte{0})
	if seed == nil {
		h.Write([]byte{0})
	} else {
		var buf [9]byte
		buf[0] = 1
		binary.BigEndian.PutUint64(buf[1:], uint64(*seed))
		h.Write(buf[:])
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
