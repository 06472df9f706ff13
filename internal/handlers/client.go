package handlers

import (
	"net/http"

	"github.com/diewo77/go-assets/httpx"
	"github.com/diewo77/go-assets/internal/models"
	"github.com/diewo77/go-assets/internal/services"
	"go.uber.org/zap"
)

type ClientHandler struct {
	svc *services.ClientService
	log *zap.Logger
}

func NewClientHandler(svc *services.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, log: log}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	httpx.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ClientInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Info("client created", zap.Uint("client_id", c.ID))
	httpx.JSON(w, http.StatusCreated, c)
}
