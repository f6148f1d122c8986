package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// vipUserIDs is the fixed privileged-name set, matched case-insensitively.
var vipUserIDs = map[string]struct{}{
	"admin":    {},
	"manager":  {},
	"director": {},
	"ceo":      {},
	"vip001":   {},
	"vip002":   {},
}

// Customer is an identity-bearing entity. UserID is the unique business key
// and, like CreatedAt, is immutable after creation.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer validates the three business fields and stamps CreatedAt.
func NewCustomer(userID, name, email string) (*Customer, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id must not be blank", ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email must not be blank", ErrValidation)
	}
	return &Customer{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (c *Customer) Identity() uuid.UUID {
	return c.ID
}

// UpdateProfile changes name and email. UserID and CreatedAt stay untouched.
func (c *Customer) UpdateProfile(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email must not be blank", ErrValidation)
	}
	c.Name = name
	c.Email = email
	return nil
}

// IsVIP reports whether a user ID grants VIP status. VIP is derived from the
// ID alone and never stored, so there is no second source of truth. A blank
// ID is never VIP.
func IsVIP(userID string) bool {
	if strings.TrimSpace(userID) == "" {
		return false
	}
	lower := strings.ToLower(userID)
	if strings.HasPrefix(lower, "vip") {
		return true
	}
	if strings.Contains(lower, "premium") {
		return true
	}
	_, ok := vipUserIDs[lower]
	return ok
}
