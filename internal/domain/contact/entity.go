package contact

import (
	"time"
)

type (
	ID      uint64
	Contact struct {
		ID        ID
		AccountID uint64

		Name  string
		CPF   string
		Phone string

		CEP          string
		Street       string
		Number       string
		Complement   string
		Neighborhood string
		City         string
		State        string

		Latitude  float64
		Longitude float64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)

// SameAddress reports whether both contacts point at the same postal
// address. A change in any of these fields invalidates previously stored
// coordinates.
func (c *Contact) SameAddress(other *Contact) bool {
	return c.Street == other.Street &&
		c.Number == other.Number &&
		c.Neighborhood == other.Neighborhood &&
		c.City == other.City &&
		c.State == other.State &&
		c.CEP == other.CEP
}

// HasCoordinates reports whether the contact carries usable coordinates.
// Zero is treated as absent: callers commonly send 0.0 as a default, and
// no Brazilian address sits on the equator/prime meridian intersection.
func (c *Contact) HasCoordinates() bool {
	return c.Latitude != 0 && c.Longitude != 0
}
