package domain

import "time"

// Order is an immutable record of one order submission outcome. Once
// inserted it is never updated or deleted; reads are filtered by ownership
// or role at query time. UserID is not enforced against the users
// collection, so an order can outlive the account that created it.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}
