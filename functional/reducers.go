package functional

import (
	"encoding/binary"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// JoinReducer returns a reducer that appends each element to a
// strings.Builder, writing separator before it whenever the builder already
// holds content. An empty separator joins elements back to back. A nil
// builder seed is replaced by a fresh one.
//
//	s := functional.MapTo[*strings.Builder](functional.With("a", "b", "c")).
//	    WithInitialValue(new(strings.Builder)).
//	    MustReduce(functional.JoinReducer(", ")).
//	    String() // "a, b, c"
func JoinReducer(separator string) ReduceExpression[string, *strings.Builder] {
	return func(builder *strings.Builder, element string) *strings.Builder {
		if builder == nil {
			builder = new(strings.Builder)
		}
		if separator != "" && builder.Len() > 0 {
			builder.WriteString(separator)
		}
		builder.WriteString(element)
		return builder
	}
}

// NewDigest returns an empty BLAKE2b-256 hash to seed a [DigestReducer].
func NewDigest() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only fails for keys longer than 64 bytes
		panic(err)
	}
	return h
}

// DigestReducer returns a reducer that feeds every element, encoded by
// encode, into the accumulated hash. Each encoding is length-prefixed so
// that ["ab", "c"] and ["a", "bc"] produce different digests.
//
//	sum := functional.InitialValue(functional.With("a", "b"), functional.NewDigest()).
//	    MustReduce(functional.DigestReducer(func(s string) []byte { return []byte(s) })).
//	    Sum(nil)
func DigestReducer[E any](encode func(E) []byte) ReduceExpression[E, hash.Hash] {
	return func(h hash.Hash, element E) hash.Hash {
		b := encode(element)
		var prefix [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(prefix[:], uint64(len(b)))
		h.Write(prefix[:n])
		h.Write(b)
		return h
	}
}
