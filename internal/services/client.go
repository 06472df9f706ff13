package services

import (
	"context"
	"strings"

	"github.com/diewo77/go-assets/internal/models"
	"github.com/diewo77/go-assets/internal/store"
	"github.com/diewo77/go-assets/validation"
)

type ClientInput struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
}

// ClientSummary is a client with the number of assets it owns.
type ClientSummary struct {
	models.Client
	EquipmentCount int64 `json:"equipment_count"`
}

type ClientService struct {
	store *store.Store
}

func NewClientService(st *store.Store) *ClientService { return &ClientService{store: st} }

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.store.ListClients(ctx)
}

// Get returns store.ErrNotFound for an unknown id.
func (s *ClientService) Get(ctx context.Context, id uint) (*ClientSummary, error) {
	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.store.CountEquipmentByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ClientSummary{Client: *c, EquipmentCount: n}, nil
}

// Create validates and stores a client. A blank address is stored as NULL.
func (s *ClientService) Create(ctx context.Context, in ClientInput) (*models.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Address != nil {
		in.Address = models.StrPtr(strings.TrimSpace(*in.Address))
	}
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Struct(in, v)
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}
	c := &models.Client{Name: in.Name, Address: in.Address}
	if err := s.store.CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
