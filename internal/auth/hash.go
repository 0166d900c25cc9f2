// Package auth implements password hashing, the login state machine with
// brute-force lockout, user registration and the admin-secret gate.
//
// Stored password entries come in two shapes. Current entries are
// "salt:digest" where salt is a 32-character hex string and digest is the
// hex PBKDF2-HMAC-SHA256 of the password. Entries without a colon are
// digests from before salting was introduced, a bare SHA-256 of the
// password, and still verify for existing accounts.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

const (
	// saltBytes is the number of random bytes in a salt, hex-encoded to
	// twice as many characters.
	saltBytes = 16
	// kdfIterations is the PBKDF2 iteration count. Changing it invalidates
	// every stored salted entry.
	kdfIterations = 100000
)

// Credential is a stored password entry split into its parts.
type Credential struct {
	Salted bool
	Salt   string
	Digest string
}

// ParseCredential splits a stored entry on the first colon. Entries without
// a colon are legacy unsalted digests.
func ParseCredential(stored string) Credential {
	salt, digest, ok := strings.Cut(stored, ":")
	if !ok {
		return Credential{Digest: stored}
	}
	return Credential{Salted: true, Salt: salt, Digest: digest}
}

// HashPassword derives a salted entry for a new password. Each call draws a
// fresh salt, so hashing the same password twice yields different entries.
func HashPassword(password []byte) (string, error) {
	salt, err := common.MakeRandHexString(saltBytes)
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	digest := pbkdf2.Key(password, []byte(salt), kdfIterations, sha256.Size, sha256.New)
	return salt + ":" + hex.EncodeToString(digest), nil
}

// VerifyPassword reports whether password matches the stored entry, salted
// or legacy. Malformed entries never match and never fail: an undecodable
// digest is simply a wrong one.
func VerifyPassword(password []byte, stored string) bool {
	cred := ParseCredential(stored)

	want, err := hex.DecodeString(cred.Digest)
	if err != nil {
		return false
	}

	var got []byte
	if cred.Salted {
		// The salt is fed to the KDF as the bytes of its hex spelling, not
		// decoded. Existing entries depend on this.
		got = pbkdf2.Key(password, []byte(cred.Salt), kdfIterations, sha256.Size, sha256.New)
	} else {
		sum := sha256.Sum256(password)
		got = sum[:]
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}
