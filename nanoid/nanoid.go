package nanoid

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// PrimaryKeyAlphabet is the alphabet used for generated record ids
	PrimaryKeyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	// PrimaryKeySize is the length of generated record ids
	PrimaryKeySize = 16
)

// Generator produces a new unique id
type Generator func() string

// PrimaryKey returns a generator of primary keys with optional length
func PrimaryKey(l ...int) Generator {
	size := PrimaryKeySize
	if len(l) > 0 && l[0] > 0 {
		size = l[0]
	}
	return func() string {
		return gonanoid.MustGenerate(PrimaryKeyAlphabet, size)
	}
}

// Must generate optional length nanoid with the default alphabet
func Must(l ...int) string {
	return gonanoid.Must(l...)
}

// IsPrimaryKey verify is primary key
func IsPrimaryKey(id string) bool {
	if len(id) != PrimaryKeySize {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(PrimaryKeyAlphabet, r) {
			return false
		}
	}
	return true
}
