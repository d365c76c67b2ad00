package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AccessService compares a provided key against the shared secret. With a
// bcrypt hash configured the plain key is ignored.
type AccessService struct {
	key     []byte
	keyHash []byte
}

// NewAccessService validates keyHash up front so a typo fails at startup.
func NewAccessService(key, keyHash string) (*AccessService, error) {
	s := &AccessService{key: []byte(key)}
	if keyHash != "" {
		if _, err := bcrypt.Cost([]byte(keyHash)); err != nil {
			return nil, fmt.Errorf("invalid auth.key_hash: %w", err)
		}
		s.keyHash = []byte(keyHash)
	}
	return s, nil
}

// Allow reports whether provided matches. An unconfigured secret denies all.
func (s *AccessService) Allow(provided string) bool {
	if provided == "" {
		return false
	}
	if len(s.keyHash) > 0 {
		return bcrypt.CompareHashAndPassword(s.keyHash, []byte(provided)) == nil
	}
	if len(s.key) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(s.key, []byte(provided)) == 1
}
