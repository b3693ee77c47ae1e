package auth

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/semaphore"
)

const (
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	slotWait         = 5 * time.Second
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = fmt.Errorf("password must be %d bytes or fewer", maxPasswordBytes)
	ErrPasswordBusy     = errors.New("too many concurrent password operations")
)

type PasswordService struct {
	slots *semaphore.Semaphore
	wait  time.Duration
	cost  int
}

// NewPasswordService falls back to bcrypt.DefaultCost when cost is out of range.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// WithConcurrencyLimit caps how many hashes or comparisons run at once.
// Zero leaves them unbounded.
func (p *PasswordService) WithConcurrencyLimit(limit uint64) *PasswordService {
	if limit == 0 {
		p.slots = nil
		return p
	}
	p.slots = semaphore.New(limit)
	p.wait = slotWait
	return p
}

func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	release, err := p.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify returns nil when plaintext matches hash.
func (p *PasswordService) Verify(hash, plaintext string) error {
	release, err := p.acquire()
	if err != nil {
		return err
	}
	defer release()

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("comparing password hash: %w", err)
	}
	return nil
}

func (p *PasswordService) acquire() (func(), error) {
	if p.slots == nil {
		return func() {}, nil
	}
	if err := p.slots.AcquireWithTimeout(p.wait); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordBusy, err)
	}
	return p.slots.Release, nil
}
