package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

const (
	// DefaultLifetime is how long a nonce stays valid at most. A nonce is
	// accepted during the tick it was created in and the one after it, so
	// its real lifetime lies between half of this and all of it.
	DefaultLifetime = 24 * time.Hour

	// MinLifetime is the shortest lifetime NewManager accepts
	MinLifetime = 2 * time.Minute

	// Length is the number of hex characters in a nonce
	Length = 10
)

var (
	// ErrEmptySecret is returned when a Manager is created without a secret
	ErrEmptySecret = errors.New("nonce secret must not be empty")

	// ErrLifetimeTooShort is returned for lifetimes below MinLifetime
	ErrLifetimeTooShort = errors.New("nonce lifetime is too short")
)

// Manager creates and verifies nonces bound to an action and a subject.
type Manager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewManager creates a Manager. A non-positive lifetime means
// DefaultLifetime; a positive one must be at least MinLifetime.
func NewManager(secret string, lifetime time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	if lifetime < MinLifetime {
		return nil, fmt.Errorf("%w: %s (minimum %s)", ErrLifetimeTooShort, lifetime, MinLifetime)
	}
	return &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

// Create returns the nonce for action and subject in the current tick
func (m *Manager) Create(action, subject string) string {
	return m.sign(m.tick(), action, subject)
}

// Verify checks a submitted nonce. It returns 1 when the nonce was created
// in the current tick and 2 when it comes from the previous one.
func (m *Manager) Verify(nonce, action, subject string) (int, error) {
	if len(nonce) != Length {
		return 0, domain.ErrInvalidNonce
	}

	tick := m.tick()
	for age := 1; age <= 2; age++ {
		expected := m.sign(tick-int64(age-1), action, subject)
		if subtle.ConstantTimeCompare([]byte(nonce), []byte(expected)) == 1 {
			return age, nil
		}
	}
	return 0, domain.ErrInvalidNonce
}

func (m *Manager) tick() int64 {
	half := int64(m.lifetime / 2)
	return (m.now().UnixNano() + half - 1) / half
}

func (m *Manager) sign(tick int64, action, subject string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(strconv.FormatInt(tick, 10)))
	mac.Write([]byte{'|'})
	mac.Write([]byte(action))
	mac.Write([]byte{'|'})
	mac.Write([]byte(subject))
	return hex.EncodeToString(mac.Sum(nil))[:Length]
}
