package entity

import (
	"time"
)

// AdminCredentials holds the single operator account. The password is
// stored as a bcrypt hash, never as plaintext.
type AdminCredentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// AdminSession is the one active admin session. It is invalidated by
// expiry, explicit logout, or a client fingerprint mismatch.
type AdminSession struct {
	Token       string    `json:"token"`
	Fingerprint string    `json:"fingerprint"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// LoginAttempts tracks consecutive failed logins. LockedAt is set when
// the failure threshold is reached and cleared when the lockout elapses
// or a login succeeds.
type LoginAttempts struct {
	Count    int        `json:"count"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}
