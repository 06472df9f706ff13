package handlers

import (
	"net/http"
	"strconv"

	"github.com/diewo77/go-assets/httpx"
	"github.com/diewo77/go-assets/internal/models"
	"github.com/diewo77/go-assets/internal/qr"
	"github.com/diewo77/go-assets/internal/services"
	"github.com/diewo77/go-assets/internal/store"
	"go.uber.org/zap"
)

const maxPageSize = 500

type EquipmentHandler struct {
	svc *services.EquipmentService
	log *zap.Logger
}

func NewEquipmentHandler(svc *services.EquipmentService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{svc: svc, log: log}
}

// List supports client_id, status, q, limit and offset query parameters.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryClientID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
		return
	}
	q := r.URL.Query()
	f := store.EquipmentFilter{ClientID: clientID, Status: q.Get("status"), Query: q.Get("q")}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))
	if f.Limit < 0 || f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	items, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if items == nil {
		items = []models.EquipmentWithOwner{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items), "total": total, "limit": f.Limit, "offset": f.Offset})
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.EquipmentInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	e, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Info("equipment created", zap.Uint("equipment_id", e.ID), zap.Uint("client_id", e.ClientID))
	httpx.JSON(w, http.StatusCreated, e)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var in services.EquipmentInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	e, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, e)
}

// Delete always answers 200; deleted reports whether a row was removed.
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	existed, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": existed})
}

// QR serves the asset's label as PNG, same payload as the report.
func (h *EquipmentHandler) QR(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	png, err := qr.EncodePNG(e.QRPayload())
	if err != nil {
		h.log.Error("qr label failed", zap.Uint("equipment_id", id), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "qr_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(png)
}
