package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password cannot be empty")

// HashedPassword is a bcrypt digest. The only constructor is HashPassword, so a
// value of this type never holds plain text and is never hashed twice.
type HashedPassword struct {
	digest string
}

func HashPassword(plain string) (HashedPassword, error) {
	if plain == "" {
		return HashedPassword{}, ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return HashedPassword{}, err
	}
	return HashedPassword{digest: string(b)}, nil
}

// StoredPassword wraps a digest read back from the accounts table.
func StoredPassword(digest string) HashedPassword {
	return HashedPassword{digest: digest}
}

func (h HashedPassword) String() string { return h.digest }

func (h HashedPassword) IsZero() bool { return h.digest == "" }

func (h HashedPassword) Matches(plain string) bool {
	if h.digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.digest), []byte(plain)) == nil
}
