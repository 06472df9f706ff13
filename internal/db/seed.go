package db

import (
	"errors"
	"fmt"

	"github.com/diewo77/go-assets/internal/models"
	"gorm.io/gorm"
)

type seedAsset struct {
	Name, Category, Serial, Location, Status, Notes string
}

var demoClients = []struct {
	Name    string
	Address string
	Assets  []seedAsset
}{
	{
		Name:    "Hospital Central",
		Address: "Av. Principal 100",
		Assets: []seedAsset{
			{"Chiller York 1", "HVAC", "YK-1001", "Roof", models.StatusOperational, ""},
			{"Generator Cummins", "Power", "CM-2040", "Basement", models.StatusFailure, "Starter motor replaced twice"},
			{"Elevator A", "Elevator", "OT-3310", "Tower A", models.StatusMaintenance, "Cable inspection pending"},
		},
	},
	{
		Name: "Warehouse North",
		Assets: []seedAsset{
			{"Forklift 3", "Vehicle", "TY-5503", "Dock 2", models.StatusOperational, ""},
		},
	},
}

// Seed inserts demo clients and equipment. Rows are matched by client name
// and serial so running it twice does not duplicate anything.
func Seed(db *gorm.DB) error {
	for _, dc := range demoClients {
		var c models.Client
		err := db.Where("name = ?", dc.Name).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = models.Client{Name: dc.Name, Address: models.StrPtr(dc.Address)}
			if err := db.Create(&c).Error; err != nil {
				return fmt.Errorf("seed client %s: %w", dc.Name, err)
			}
		} else if err != nil {
			return fmt.Errorf("seed client %s: %w", dc.Name, err)
		}
		for _, a := range dc.Assets {
			var count int64
			if err := db.Model(&models.Equipment{}).Where("serial = ?", a.Serial).Count(&count).Error; err != nil {
				return fmt.Errorf("seed equipment %s: %w", a.Serial, err)
			}
			if count > 0 {
				continue
			}
			e := models.Equipment{
				Name:     a.Name,
				Category: a.Category,
				Serial:   models.StrPtr(a.Serial),
				Location: a.Location,
				Status:   a.Status,
				Notes:    models.StrPtr(a.Notes),
				ClientID: c.ID,
			}
			if err := db.Create(&e).Error; err != nil {
				return fmt.Errorf("seed equipment %s: %w", a.Serial, err)
			}
		}
	}
	return nil
}
