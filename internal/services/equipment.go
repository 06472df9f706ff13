package services

import (
	"context"
	"errors"
	"strings"

	"github.com/diewo77/go-assets/internal/models"
	"github.com/diewo77/go-assets/internal/store"
	"github.com/diewo77/go-assets/validation"
	"gorm.io/gorm"
)

// EquipmentInput is the body of an equipment create or full update.
// Status and ClientID may be omitted on update to keep the stored values.
type EquipmentInput struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Category string  `json:"category" validate:"required,max=50"`
	Serial   *string `json:"serial,omitempty" validate:"omitempty,max=50"`
	Location string  `json:"location" validate:"required,max=100"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=200"`
	Status   *string `json:"status,omitempty" validate:"omitempty,max=20"`
	ClientID *uint   `json:"client_id,omitempty"`
}

func (in *EquipmentInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Location = strings.TrimSpace(in.Location)
	in.Serial = trimmed(in.Serial)
	in.Notes = trimmed(in.Notes)
	in.Status = trimmed(in.Status)
}

// trimmed returns nil for a nil or blank value.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	return models.StrPtr(strings.TrimSpace(*p))
}

type EquipmentService struct {
	store *store.Store
}

func NewEquipmentService(st *store.Store) *EquipmentService { return &EquipmentService{store: st} }

// List returns one page of matching equipment and the total number of matches.
func (s *EquipmentService) List(ctx context.Context, f store.EquipmentFilter) ([]models.EquipmentWithOwner, int64, error) {
	items, err := s.store.ListEquipment(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountEquipment(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *EquipmentService) Get(ctx context.Context, id uint) (*models.EquipmentWithOwner, error) {
	return s.store.GetEquipment(ctx, id)
}

// Create validates in, checks the owner and serial, then inserts the asset.
func (s *EquipmentService) Create(ctx context.Context, in EquipmentInput) (*models.EquipmentWithOwner, error) {
	in.normalize()
	v := s.validate(in)
	if in.ClientID == nil {
		v["client_id"] = validation.CodeRequired
	}
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}
	if err := s.checkRefs(ctx, *in.ClientID, in.Serial, 0); err != nil {
		return nil, err
	}
	e := &models.Equipment{
		Name:     in.Name,
		Category: in.Category,
		Serial:   in.Serial,
		Location: in.Location,
		Notes:    in.Notes,
		Status:   models.StatusOperational,
		ClientID: *in.ClientID,
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if err := s.store.CreateEquipment(ctx, e); err != nil {
		return nil, mapWriteErr(err)
	}
	return s.store.GetEquipment(ctx, e.ID)
}

// Update replaces every field of asset id. A nil Status or ClientID keeps the
// current value; a blank serial or notes clears it.
func (s *EquipmentService) Update(ctx context.Context, id uint, in EquipmentInput) (*models.EquipmentWithOwner, error) {
	e, err := s.store.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	in.normalize()
	if v := s.validate(in); !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}
	clientID := e.ClientID
	if in.ClientID != nil {
		clientID = *in.ClientID
	}
	if err := s.checkRefs(ctx, clientID, in.Serial, e.ID); err != nil {
		return nil, err
	}
	e.Name = in.Name
	e.Category = in.Category
	e.Serial = in.Serial
	e.Location = in.Location
	e.Notes = in.Notes
	e.ClientID = clientID
	if in.Status != nil {
		e.Status = *in.Status
	}
	if err := s.store.SaveEquipment(ctx, e); err != nil {
		return nil, mapWriteErr(err)
	}
	return s.store.GetEquipment(ctx, e.ID)
}

// Delete removes asset id. Deleting a missing asset is not an error.
func (s *EquipmentService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.store.DeleteEquipment(ctx, id)
}

func (s *EquipmentService) validate(in EquipmentInput) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("category", in.Category, v)
	validation.Required("location", in.Location, v)
	validation.Struct(in, v)
	return v
}

func (s *EquipmentService) checkRefs(ctx context.Context, clientID uint, serial *string, selfID uint) error {
	ok, err := s.store.ClientExists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientNotFound
	}
	if serial == nil {
		return nil
	}
	taken, err := s.store.SerialTaken(ctx, *serial, selfID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateSerial
	}
	return nil
}

// mapWriteErr turns a unique-index race into ErrDuplicateSerial.
func mapWriteErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSerial
	}
	return err
}
