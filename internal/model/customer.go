package model

import "time"

// Customer is a person who rents movies. Gold members get discounted rates
// at rental creation; the flag has no effect on returns.
type Customer struct {
	ID        uint64    `json:"id"`     // customers.id
	Name      string    `json:"name"`   // customers.name
	Phone     string    `json:"phone"`  // customers.phone
	IsGold    bool      `json:"isGold"` // customers.is_gold
	CreatedAt time.Time `json:"-"`      // customers.created_at
}
