// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// ErrMalformedPasswordHash is returned when a stored hash cannot be parsed.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// PasswordHasher hashes account passwords and checks candidates against a
// stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// ScryptHasher produces hashes in the "scrypt:N:r:p$salt$hex" format.
type ScryptHasher struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

// NewScryptHasher returns a hasher with N=32768, r=8, p=1 and a 64 byte key.
func NewScryptHasher() *ScryptHasher {
	return &ScryptHasher{N: 32768, R: 8, P: 1, KeyLen: 64, SaltLen: 16}
}

func (h *ScryptHasher) Hash(password string) (string, error) {
	raw := make([]byte, h.SaltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	salt := base64.RawURLEncoding.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), h.N, h.R, h.P, h.KeyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}

	return fmt.Sprintf("scrypt:%d:%d:%d$%s$%s", h.N, h.R, h.P, salt, hex.EncodeToString(key)), nil
}

// Verify reports whether password matches hash. Parameters are taken from
// the hash itself, so hashes produced with other costs still verify.
func (h *ScryptHasher) Verify(hash, password string) bool {
	n, r, p, salt, want, err := parseScryptHash(hash)
	if err != nil {
		return false
	}

	got, err := scrypt.Key([]byte(password), []byte(salt), n, r, p, len(want))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}

func parseScryptHash(hash string) (n, r, p int, salt string, key []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 3 {
		return 0, 0, 0, "", nil, ErrMalformedPasswordHash
	}

	params := strings.Split(parts[0], ":")
	if len(params) != 4 || params[0] != "scrypt" {
		return 0, 0, 0, "", nil, ErrMalformedPasswordHash
	}

	costs := make([]int, 3)
	for i, v := range params[1:] {
		costs[i], err = strconv.Atoi(v)
		if err != nil || costs[i] <= 0 {
			return 0, 0, 0, "", nil, ErrMalformedPasswordHash
		}
	}

	key, err = hex.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, "", nil, ErrMalformedPasswordHash
	}

	return costs[0], costs[1], costs[2], parts[1], key, nil
}
