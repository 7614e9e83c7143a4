package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Checker verifies login passwords against an optional configured bcrypt hash.
// Without a hash it only requires the password to be non-empty.
type Checker struct {
	hash string
}

func NewChecker(hash string) *Checker {
	return &Checker{hash: hash}
}

func (c *Checker) Check(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if c.hash == "" {
		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
