package models

import (
	"strings"
	"time"
)

// DefaultSiteLabel is used when a client has no address on record.
const DefaultSiteLabel = "Main"

// Client is the owning customer/site of tracked equipment.
// The equipment of a client is never loaded implicitly; query it by client_id.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   *string   `gorm:"size:200" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddressOr returns the trimmed address, or def when none is set.
func (c *Client) AddressOr(def string) string {
	if c.Address == nil {
		return def
	}
	if a := strings.TrimSpace(*c.Address); a != "" {
		return a
	}
	return def
}
