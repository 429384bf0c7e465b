package model

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// NewID returns a collision-resistant record identifier: the millisecond
// timestamp in base 36 followed by a random base-36 suffix. Identifiers are
// never checked against existing records; uniqueness is probabilistic.
func NewID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic("model: read random bytes: " + err.Error())
	}
	suffix := binary.BigEndian.Uint64(buf[:])
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(suffix, 36)
}
