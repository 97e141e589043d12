package arenadomain

import (
	"crypto/subtle"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// SessionKeyLen is the size of a derived session key in bytes.
const SessionKeyLen = 32

// SessionKey is the anti-cheat token bound to a single game session. It is
// derived server-side and never revealed to the player; a submission carrying
// the correct key proves it flowed through a legitimately issued session.
type SessionKey [SessionKeyLen]byte

// Secret is the pool-wide secret the key derivation hangs off. Rotating it
// invalidates prediction of future keys but leaves already-issued keys valid.
type Secret [32]byte

// DeriveSessionKey computes the session key for a (player, start time) pair.
// The digest is keccak-256 over playerID || startTime (little-endian) ||
// secret, so distinct sessions yield distinct keys and the key is infeasible
// to forge without the secret.
func DeriveSessionKey(playerID string, startTime int64, secret Secret) SessionKey {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(playerID))

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(startTime))
	h.Write(ts[:])
	h.Write(secret[:])

	var key SessionKey
	h.Sum(key[:0])
	return key
}

// VerifySessionKey reports whether submitted matches expected, in constant
// time.
func VerifySessionKey(expected, submitted SessionKey) bool {
	return subtle.ConstantTimeCompare(expected[:], submitted[:]) == 1
}
