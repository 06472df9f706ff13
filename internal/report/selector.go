package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/go-assets/i18n"
	"github.com/diewo77/go-assets/internal/models"
	"github.com/diewo77/go-assets/internal/store"
	"go.uber.org/zap"
)

// Source is the read side of the store used by the selector.
type Source interface {
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	ListEquipment(ctx context.Context, f store.EquipmentFilter) ([]models.EquipmentWithOwner, error)
}

// Selection is what a report renders: a title, a subtitle and ordered records.
type Selection struct {
	Title    string
	Subtitle string
	Records  []models.EquipmentWithOwner
	Lang     string
	// Client is the resolved filter client, nil for the global report.
	Client *models.Client
	// ClientMissing is set when a filter id matched no client.
	ClientMissing bool
}

type Selector struct {
	src Source
	log *zap.Logger
}

func NewSelector(src Source, log *zap.Logger) *Selector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{src: src, log: log}
}

// Resolve picks the title, subtitle and records for an optional client filter.
//
// A filter id that matches no client keeps the global title and subtitle and
// yields no records; ClientMissing is set so callers can tell it apart from a
// client without equipment.
func (s *Selector) Resolve(ctx context.Context, clientID *uint, lang string) (Selection, error) {
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLang
	}
	sel := Selection{
		Title:    i18n.T(lang, "report.global_title"),
		Subtitle: i18n.T(lang, "report.global_subtitle"),
		Lang:     lang,
	}
	if clientID == nil {
		recs, err := s.src.ListEquipment(ctx, store.EquipmentFilter{})
		if err != nil {
			return Selection{}, fmt.Errorf("resolve global report: %w", err)
		}
		sel.Records = recs
		return sel, nil
	}

	client, err := s.src.GetClient(ctx, *clientID)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Warn("report filter matches no client", zap.Uint("client_id", *clientID))
		sel.ClientMissing = true
		sel.Records = []models.EquipmentWithOwner{}
		return sel, nil
	}
	if err != nil {
		return Selection{}, fmt.Errorf("resolve client %d: %w", *clientID, err)
	}
	recs, err := s.src.ListEquipment(ctx, store.EquipmentFilter{ClientID: &client.ID})
	if err != nil {
		return Selection{}, fmt.Errorf("resolve equipment of client %d: %w", client.ID, err)
	}
	sel.Client = client
	sel.Title = i18n.Tf(lang, "report.client_title", client.Name)
	sel.Subtitle = i18n.Tf(lang, "report.site", client.AddressOr(i18n.T(lang, "report.site_default")))
	sel.Records = recs
	return sel, nil
}
