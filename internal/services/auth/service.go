package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/mcoot/r6status/internal/model"
)

// Errors
var (
	ErrInvalidPIN      = errors.New("invalid pin")
	ErrInvalidAdminPIN = errors.New("invalid admin pin")
	ErrMisconfigured   = errors.New("server is missing required secrets")
)

// PINHash derives the digest stored for a player's PIN:
// hex(SHA256(salt + "::" + lowercase(username) + "::" + pin))
func PINHash(salt, username, pin string) string {
	return digest(salt + "::" + strings.ToLower(username) + "::" + pin)
}

// AdminPINHash derives the digest for the admin PIN:
// hex(SHA256(salt + "::ADMIN::" + pin))
func AdminPINHash(salt, pin string) string {
	return digest(salt + "::ADMIN::" + pin)
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Equal compares two digests in constant time
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Config holds the secrets used for PIN verification
type Config struct {
	Salt     string
	AdminPIN string
}

// Service verifies player and admin PINs
type Service struct {
	salt      string
	adminHash string
}

// New creates a new auth Service. Missing secrets are reported per call
// as ErrMisconfigured rather than at construction.
func New(cfg Config) *Service {
	s := &Service{salt: cfg.Salt}
	if cfg.Salt != "" && cfg.AdminPIN != "" {
		s.adminHash = AdminPINHash(cfg.Salt, cfg.AdminPIN)
	}
	return s
}

// PlayerPINsEnabled reports whether the salt needed for player PINs is set
func (s *Service) PlayerPINsEnabled() bool {
	return s.salt != ""
}

// AdminEnabled reports whether admin operations can be authorized
func (s *Service) AdminEnabled() bool {
	return s.adminHash != ""
}

// HashPIN returns the digest to persist for a player's PIN
func (s *Service) HashPIN(username, pin string) (string, error) {
	if !s.PlayerPINsEnabled() {
		return "", ErrMisconfigured
	}
	return PINHash(s.salt, username, pin), nil
}

// VerifyPIN checks pin against the hash stored on record
func (s *Service) VerifyPIN(record *model.PlayerRecord, pin string) error {
	expected, err := s.HashPIN(record.Username, pin)
	if err != nil {
		return err
	}
	if !Equal(expected, record.PINHash) {
		return ErrInvalidPIN
	}
	return nil
}

// VerifyAdmin checks pin against the configured admin PIN
func (s *Service) VerifyAdmin(pin string) error {
	if !s.AdminEnabled() {
		return ErrMisconfigured
	}
	if !Equal(AdminPINHash(s.salt, pin), s.adminHash) {
		return ErrInvalidAdminPIN
	}
	return nil
}
