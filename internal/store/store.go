// Package store holds the persistence queries for clients and equipment.
// The *gorm.DB handle is passed in explicitly; the package keeps no globals.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/go-assets/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// Store wraps the database handle shared by the selector, services and handlers.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// EquipmentFilter narrows ListEquipment. Zero values mean "no filter".
type EquipmentFilter struct {
	ClientID *uint
	Status   string
	Query    string
	Limit    int
	Offset   int
}

// ---- clients ----

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Order("id asc").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

func (s *Store) ClientExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("client exists %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *Store) CreateClient(ctx context.Context, c *models.Client) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// CountEquipmentByClient returns the number of assets owned by a client.
func (s *Store) CountEquipmentByClient(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Equipment{}).Where("client_id = ?", clientID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count equipment for client %d: %w", clientID, err)
	}
	return count, nil
}

// ---- equipment ----

// withOwner selects equipment rows joined with their owning client.
// LEFT JOIN keeps rows whose owner has vanished.
func (s *Store) withOwner(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("equipment").
		Select("equipment.*, clients.name AS client_name, clients.address AS client_address").
		Joins("LEFT JOIN clients ON clients.id = equipment.client_id")
}

func applyEquipmentFilter(q *gorm.DB, f EquipmentFilter) *gorm.DB {
	if f.ClientID != nil {
		q = q.Where("equipment.client_id = ?", *f.ClientID)
	}
	if f.Status != "" {
		q = q.Where("equipment.status = ?", f.Status)
	}
	if query := strings.TrimSpace(f.Query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("lower(equipment.name) LIKE ? OR lower(equipment.serial) LIKE ? OR lower(equipment.location) LIKE ?", like, like, like)
	}
	return q
}

// ListEquipment returns equipment with owner data in id order.
func (s *Store) ListEquipment(ctx context.Context, f EquipmentFilter) ([]models.EquipmentWithOwner, error) {
	q := applyEquipmentFilter(s.withOwner(ctx), f).Order("equipment.id asc")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var rows []models.EquipmentWithOwner
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return rows, nil
}

// CountEquipment returns how many rows match f, ignoring Limit and Offset.
func (s *Store) CountEquipment(ctx context.Context, f EquipmentFilter) (int64, error) {
	var n int64
	q := applyEquipmentFilter(s.db.WithContext(ctx).Model(&models.Equipment{}), f)
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count equipment: %w", err)
	}
	return n, nil
}

func (s *Store) GetEquipment(ctx context.Context, id uint) (*models.EquipmentWithOwner, error) {
	var rows []models.EquipmentWithOwner
	if err := s.withOwner(ctx).Where("equipment.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get equipment %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// FindEquipment loads the bare equipment row for updates.
func (s *Store) FindEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	var e models.Equipment
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find equipment %d: %w", id, err)
	}
	return &e, nil
}

// SerialTaken reports whether another asset (other than exceptID) already uses serial.
func (s *Store) SerialTaken(ctx context.Context, serial string, exceptID uint) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Equipment{}).Where("serial = ?", serial)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check serial: %w", err)
	}
	return count > 0, nil
}

func (s *Store) CreateEquipment(ctx context.Context, e *models.Equipment) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create equipment: %w", err)
	}
	return nil
}

// SaveEquipment writes every column of e, including NULLs.
func (s *Store) SaveEquipment(ctx context.Context, e *models.Equipment) error {
	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("save equipment %d: %w", e.ID, err)
	}
	return nil
}

// DeleteEquipment removes the row; it reports whether a row existed.
func (s *Store) DeleteEquipment(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Equipment{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete equipment %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// StatusCounts returns the number of assets per status, optionally for one client.
func (s *Store) StatusCounts(ctx context.Context, clientID *uint) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	q := s.db.WithContext(ctx).Model(&models.Equipment{}).Select("status, count(*) AS total").Group("status")
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return out, nil
}
