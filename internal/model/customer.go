package model

import "time"

// Customer represents a storefront account as stored in the `customers`
// table.  Each field corresponds to a column.  PasswordHash holds a bcrypt
// digest; plaintext passwords never reach this struct.  The contact fields
// are optional at registration and editable through the profile endpoint,
// while Email and PasswordHash are immutable through that path.
type Customer struct {
	ID           uint64    // customers.id
	Name         string    // customers.name
	Email        string    // customers.email (unique)
	PasswordHash string    // customers.password
	Phone        string    // customers.phone
	Address      string    // customers.address
	City         string    // customers.city
	Zipcode      string    // customers.zipcode
	CreatedAt    time.Time // customers.created_at
}
