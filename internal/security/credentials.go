package security

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialChecker verifies an operator login. The check is injectable so
// the gate does not prescribe where credentials live.
type CredentialChecker interface {
	Check(username, password string) error
}

// StaticCredentials is the shipped checker: a single configured operator
// account compared against a bcrypt hash.
type StaticCredentials struct {
	username string
	hash     []byte
}

// NewStaticCredentials accepts either a precomputed bcrypt hash or, for dev
// setups, a plaintext password that is hashed on load.
func NewStaticCredentials(username, passwordHash, plaintext string) (*StaticCredentials, error) {
	if passwordHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(h)
	}
	return &StaticCredentials{username: username, hash: []byte(passwordHash)}, nil
}

func (c *StaticCredentials) Check(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(c.hash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
