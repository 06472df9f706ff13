package models

import (
	"fmt"
	"time"
)

// Equipment status values used by the UI. Status is free text; only
// StatusFailure has special meaning in reports.
const (
	StatusOperational = "Operational"
	StatusFailure     = "Failure"
	StatusMaintenance = "Under Maintenance"
)

// Equipment is a tracked physical asset.
type Equipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	Serial    *string   `gorm:"size:50;uniqueIndex" json:"serial"`
	Location  string    `gorm:"size:100;not null" json:"location"`
	Status    string    `gorm:"size:20;not null;default:'Operational'" json:"status"`
	Notes     *string   `gorm:"size:200" json:"notes"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the singular table name used by the existing databases.
func (Equipment) TableName() string { return "equipment" }

// SerialOrEmpty returns the serial number or "" when unset.
func (e *Equipment) SerialOrEmpty() string {
	if e.Serial == nil {
		return ""
	}
	return *e.Serial
}

// NotesOrEmpty returns the notes or "" when unset.
func (e *Equipment) NotesOrEmpty() string {
	if e.Notes == nil {
		return ""
	}
	return *e.Notes
}

// IsFailure reports whether the asset is flagged as failed.
func (e *Equipment) IsFailure() bool { return e.Status == StatusFailure }

// QRPayload is the text encoded in the asset's QR code.
func (e *Equipment) QRPayload() string {
	return fmt.Sprintf("ID:%d\nSN:%s", e.ID, e.SerialOrEmpty())
}

// EquipmentWithOwner is an equipment row joined with its owning client.
// ClientName and ClientAddress are empty when the owner row is missing.
type EquipmentWithOwner struct {
	Equipment
	ClientName    string  `json:"client_name"`
	ClientAddress *string `json:"client_address,omitempty"`
}

// OwnerName returns the owning client's name or the fallback label.
func (e *EquipmentWithOwner) OwnerName(fallback string) string {
	if e.ClientName == "" {
		return fallback
	}
	return e.ClientName
}

// StrPtr returns nil for blank strings, a pointer to s otherwise.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
