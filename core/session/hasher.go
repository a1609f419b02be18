package session

import (
	"crypto/subtle"
	"errors"
)

// Hasher turns passwords into their stored form and checks candidates
// against it. Compare returns nil on a match.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

var errMismatch = errors.New("session: password mismatch")

// PlainHasher stores passwords as given; Compare is exact string equality.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) { return password, nil }

func (PlainHasher) Compare(hash, password string) error {
	if subtle.ConstantTimeCompare([]byte(hash), []byte(password)) != 1 {
		return errMismatch
	}
	return nil
}
