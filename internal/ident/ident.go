// Package ident produces collision-resistant string identifiers for new
// records. Identifiers combine a short entity prefix, a base-36 millisecond
// timestamp, and a random base-36 suffix, so ids generated within one
// session are pairwise distinct with overwhelming probability.
package ident

import (
	"crypto/rand"
	"strconv"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 6
)

// New returns a fresh identifier tagged with prefix. The prefix exists for
// debuggability only; it carries no semantic or referential meaning. An
// empty prefix defaults to "id".
func New(prefix string) string {
	if prefix == "" {
		prefix = "id"
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return prefix + "_" + ts + "_" + randomSuffix()
}

func randomSuffix() string {
	var b [suffixLength]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b[:])
}
