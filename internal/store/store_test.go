package store

import (
	"context"
	"errors"
	"testing"

	"github.com/diewo77/go-assets/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) *Store {
	t.Helper()
	d, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AutoMigrate(&models.Client{}, &models.Equipment{}); err != nil {
		t.Fatal(err)
	}
	return New(d)
}

func mustClient(t *testing.T, s *Store, name string, address *string) *models.Client {
	t.Helper()
	c := &models.Client{Name: name, Address: address}
	if err := s.CreateClient(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	return c
}

func mustEquipment(t *testing.T, s *Store, e models.Equipment) *models.Equipment {
	t.Helper()
	if err := s.CreateEquipment(context.Background(), &e); err != nil {
		t.Fatal(err)
	}
	return &e
}

func TestClientLookup(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	c := mustClient(t, s, "Acme", models.StrPtr("Main St"))

	got, err := s.GetClient(ctx, c.ID)
	if err != nil || got.Name != "Acme" {
		t.Fatalf("GetClient = %+v, %v", got, err)
	}
	if _, err := s.GetClient(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	ok, err := s.ClientExists(ctx, c.ID)
	if err != nil || !ok {
		t.Fatalf("ClientExists = %v, %v", ok, err)
	}
	ok, _ = s.ClientExists(ctx, 404)
	if ok {
		t.Fatal("unknown client reported as existing")
	}
	mustClient(t, s, "Beta", nil)
	list, err := s.ListClients(ctx)
	if err != nil || len(list) != 2 || list[0].Name != "Acme" {
		t.Fatalf("ListClients = %+v, %v", list, err)
	}
}

func TestListEquipmentFilters(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a := mustClient(t, s, "Acme", models.StrPtr("Main St"))
	b := mustClient(t, s, "Beta", nil)
	mustEquipment(t, s, models.Equipment{Name: "Chiller", Serial: models.StrPtr("CH-1"), Location: "Roof", Status: models.StatusOperational, ClientID: a.ID})
	mustEquipment(t, s, models.Equipment{Name: "Boiler", Serial: models.StrPtr("BO-1"), Location: "Basement", Status: models.StatusFailure, ClientID: a.ID})
	mustEquipment(t, s, models.Equipment{Name: "Pump", Location: "Yard", Status: models.StatusOperational, ClientID: b.ID})

	all, err := s.ListEquipment(ctx, EquipmentFilter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("ListEquipment = %d rows, %v", len(all), err)
	}
	if all[0].ClientName != "Acme" || all[0].ClientAddress == nil || *all[0].ClientAddress != "Main St" {
		t.Errorf("owner columns not scanned: %+v", all[0])
	}
	if all[2].ClientName != "Beta" || all[2].ClientAddress != nil {
		t.Errorf("owner without address: %+v", all[2])
	}

	byClient, _ := s.ListEquipment(ctx, EquipmentFilter{ClientID: &a.ID})
	if len(byClient) != 2 {
		t.Fatalf("client filter returned %d rows", len(byClient))
	}
	failing, _ := s.ListEquipment(ctx, EquipmentFilter{Status: models.StatusFailure})
	if len(failing) != 1 || failing[0].Name != "Boiler" {
		t.Fatalf("status filter = %+v", failing)
	}
	found, _ := s.ListEquipment(ctx, EquipmentFilter{Query: "ROOF"})
	if len(found) != 1 || found[0].Name != "Chiller" {
		t.Fatalf("search = %+v", found)
	}
	page, _ := s.ListEquipment(ctx, EquipmentFilter{Limit: 1, Offset: 1})
	if len(page) != 1 || page[0].Name != "Boiler" {
		t.Fatalf("pagination = %+v", page)
	}
	total, err := s.CountEquipment(ctx, EquipmentFilter{Limit: 1, Offset: 1})
	if err != nil || total != 3 {
		t.Fatalf("CountEquipment = %d, %v", total, err)
	}
	total, _ = s.CountEquipment(ctx, EquipmentFilter{ClientID: &a.ID, Query: "roof"})
	if total != 1 {
		t.Fatalf("filtered count = %d", total)
	}
}

func TestEquipmentLifecycle(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	c := mustClient(t, s, "Acme", nil)
	e := mustEquipment(t, s, models.Equipment{Name: "Chiller", Serial: models.StrPtr("CH-1"), Status: models.StatusOperational, ClientID: c.ID})

	taken, err := s.SerialTaken(ctx, "CH-1", 0)
	if err != nil || !taken {
		t.Fatalf("SerialTaken = %v, %v", taken, err)
	}
	taken, _ = s.SerialTaken(ctx, "CH-1", e.ID)
	if taken {
		t.Fatal("own serial must not count as taken")
	}

	e.Notes = models.StrPtr("check belts")
	e.Serial = nil
	if err := s.SaveEquipment(ctx, e); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetEquipment(ctx, e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Serial != nil || got.NotesOrEmpty() != "check belts" || got.ClientName != "Acme" {
		t.Fatalf("after save: %+v", got)
	}

	existed, err := s.DeleteEquipment(ctx, e.ID)
	if err != nil || !existed {
		t.Fatalf("DeleteEquipment = %v, %v", existed, err)
	}
	existed, _ = s.DeleteEquipment(ctx, e.ID)
	if existed {
		t.Fatal("second delete should report no row")
	}
	if _, err := s.GetEquipment(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	if _, err := s.FindEquipment(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestStatusCounts(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a := mustClient(t, s, "Acme", nil)
	b := mustClient(t, s, "Beta", nil)
	mustEquipment(t, s, models.Equipment{Name: "1", Status: models.StatusOperational, ClientID: a.ID})
	mustEquipment(t, s, models.Equipment{Name: "2", Status: models.StatusFailure, ClientID: a.ID})
	mustEquipment(t, s, models.Equipment{Name: "3", Status: models.StatusFailure, ClientID: b.ID})

	all, err := s.StatusCounts(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if all[models.StatusFailure] != 2 || all[models.StatusOperational] != 1 {
		t.Fatalf("counts = %v", all)
	}
	one, _ := s.StatusCounts(ctx, &b.ID)
	if one[models.StatusFailure] != 1 || one[models.StatusOperational] != 0 {
		t.Fatalf("client counts = %v", one)
	}
	n, _ := s.CountEquipmentByClient(ctx, a.ID)
	if n != 2 {
		t.Fatalf("CountEquipmentByClient = %d", n)
	}
}
