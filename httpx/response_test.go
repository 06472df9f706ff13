package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusConflict, "serial_already_exists", map[string]string{"serial": "taken"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "serial_already_exists" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestJSONNil(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, nil)
	if w.Body.String() != "null" {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	Attachment(w, "application/pdf", "report.pdf", []byte("%PDF-1.3"))
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="report.pdf"` {
		t.Fatalf("disposition = %q", got)
	}
	if w.Header().Get("Content-Length") != "8" {
		t.Fatalf("length = %q", w.Header().Get("Content-Length"))
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	if err := Decode(r, &dst); err == nil {
		t.Fatal("expected error for unknown field")
	}
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	if err := Decode(r, &dst); err != nil || dst.Name != "a" {
		t.Fatalf("decode = %+v, %v", dst, err)
	}
}
