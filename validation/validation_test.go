package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Serial *string `json:"serial,omitempty" validate:"omitempty,max=3"`
	Status string  `json:"status" validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	long := "ABCD"
	tests := []struct {
		name string
		in   sample
		want Violations
	}{
		{"ok", sample{Name: "pump"}, Violations{}},
		{"missing name", sample{}, Violations{"name": CodeRequired}},
		{"too long", sample{Name: "compressor", Serial: &long}, Violations{"name": CodeTooLong, "serial": CodeTooLong}},
		{"bad enum", sample{Name: "x", Status: "c"}, Violations{"status": CodeInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Violations{}
			Struct(tt.in, v)
			if diff := cmp.Diff(tt.want, v); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStructKeepsFirstCode(t *testing.T) {
	v := Violations{"name": CodeRequired}
	Struct(sample{Name: strings.Repeat("x", 10)}, v)
	if v["name"] != CodeRequired {
		t.Fatalf("existing code overwritten: %v", v)
	}
}

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("a", "  ", v)
	Required("b", "x", v)
	if diff := cmp.Diff(Violations{"a": CodeRequired}, v); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if v.Empty() {
		t.Fatal("expected violations")
	}
}
