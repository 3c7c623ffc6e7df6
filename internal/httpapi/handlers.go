package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hunterline/internal/engine"
)

type Handler struct {
	svc *engine.Service
	hub *Hub
	log *slog.Logger
}

func NewHandler(svc *engine.Service, hub *Hub, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, hub: hub, log: log}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) hunter(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}

func (h *Handler) quests(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"quests": h.svc.Quests()})
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	res, err := h.svc.CompleteQuest(r.Context(), id)
	if err != nil {
		h.log.Error("complete quest", "quest_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to complete quest")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Refresh(r.Context())
	if err != nil {
		h.log.Error("refresh quests", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to refresh quests")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) setName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.svc.SetProfileName(r.Context(), req.Name); err != nil {
		if errors.Is(err, engine.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("set profile name", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to save name")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}

func (h *Handler) firstVisit(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CompleteFirstVisit(r.Context()); err != nil {
		h.log.Error("complete first visit", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetProfile(r.Context()); err != nil {
		h.log.Error("reset profile", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to reset profile")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}

func (h *Handler) plans(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"plans": h.svc.TrainingPlans()})
}

func (h *Handler) achievements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"achievements": h.svc.Achievements()})
}

func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		writeError(w, http.StatusNotFound, "event stream disabled")
		return
	}
	h.hub.ServeWS(w, r)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
