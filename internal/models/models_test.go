package models

import "testing"

func TestClient_AddressOr(t *testing.T) {
	blank := "   "
	addr := "12 Industrial Park"
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{"nil address", Client{}, DefaultSiteLabel},
		{"blank address", Client{Address: &blank}, DefaultSiteLabel},
		{"address set", Client{Address: &addr}, "12 Industrial Park"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.AddressOr(DefaultSiteLabel); got != tt.want {
				t.Errorf("AddressOr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEquipment_QRPayload(t *testing.T) {
	e := &Equipment{ID: 42, Serial: StrPtr("ABC-99")}
	if got := e.QRPayload(); got != "ID:42\nSN:ABC-99" {
		t.Errorf("QRPayload() = %q", got)
	}
	noSerial := &Equipment{ID: 7}
	if got := noSerial.QRPayload(); got != "ID:7\nSN:" {
		t.Errorf("QRPayload() without serial = %q", got)
	}
}

func TestEquipment_IsFailure(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusFailure, true},
		{StatusOperational, false},
		{"Under Review", false},
		{"", false},
		{"failure", false},
	}
	for _, tt := range tests {
		e := &Equipment{Status: tt.status}
		if got := e.IsFailure(); got != tt.want {
			t.Errorf("IsFailure(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestEquipment_OptionalFields(t *testing.T) {
	e := &Equipment{}
	if e.SerialOrEmpty() != "" || e.NotesOrEmpty() != "" {
		t.Fatalf("expected empty optional fields")
	}
	e.Notes = StrPtr("check filter")
	if e.NotesOrEmpty() != "check filter" {
		t.Errorf("NotesOrEmpty() = %q", e.NotesOrEmpty())
	}
	if StrPtr("") != nil {
		t.Errorf("StrPtr(\"\") should be nil")
	}
}

func TestEquipmentWithOwner_OwnerName(t *testing.T) {
	e := &EquipmentWithOwner{}
	if got := e.OwnerName("No Client"); got != "No Client" {
		t.Errorf("OwnerName() = %q", got)
	}
	e.ClientName = "Acme"
	if got := e.OwnerName("No Client"); got != "Acme" {
		t.Errorf("OwnerName() = %q", got)
	}
}
