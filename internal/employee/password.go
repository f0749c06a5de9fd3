package employee

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// DefaultPassword is the initial password for every new account. Creation
// always stores its digest regardless of what the client submitted.
const DefaultPassword = "123456"

// PasswordHasher defines the digest used for stored passwords. The digest
// must be deterministic: stored values are compared byte-for-byte.
type PasswordHasher interface {
	Hash(pw string) string
	Verify(hash, pw string) bool
}

// MD5Hasher digests passwords as lowercase hex MD5, matching the stored
// format of existing rows.
type MD5Hasher struct{}

func (MD5Hasher) Hash(pw string) string {
	sum := md5.Sum([]byte(pw))
	return hex.EncodeToString(sum[:])
}

func (m MD5Hasher) Verify(hash, pw string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(m.Hash(pw))) == 1
}
