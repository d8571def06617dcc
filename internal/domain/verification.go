package domain

import "time"

// Verification is a one-time code proving control of a contact channel.
// Only the most recently issued code per user can be consumed: issuing a
// new one purges all prior rows for that user.
type Verification struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Expired reports whether the code is no longer consumable at the given
// instant. Expiry is strict: a code is valid only while expires_at is in
// the future.
func (v *Verification) Expired(now time.Time) bool {
	return !v.ExpiresAt.After(now)
}
