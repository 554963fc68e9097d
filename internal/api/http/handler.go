package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	passagedomain "versewake/internal/domain/passage"
	"versewake/internal/logger"
	alarmrepo "versewake/internal/repository/alarm"
	"versewake/internal/repository/settings"
	"versewake/internal/service/lifecycle"
)

// Handler serves the alarm, settings and episode endpoints.
type Handler struct {
	lifecycle *lifecycle.Service
	settings  settings.Repository
}

// NewHandler creates the API handler.
func NewHandler(lifecycleService *lifecycle.Service, settingsRepo settings.Repository) *Handler {
	return &Handler{
		lifecycle: lifecycleService,
		settings:  settingsRepo,
	}
}

func (h *Handler) listAlarms(w http.ResponseWriter, r *http.Request) {
	alarms, err := h.lifecycle.List(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toAlarmResponses(alarms), "")
}

func (h *Handler) createAlarm(w http.ResponseWriter, r *http.Request) {
	var req alarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")

		return
	}

	created, err := h.lifecycle.Create(r.Context(), req.toDomain(""))
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{
		Status:  http.StatusCreated,
		Success: true,
		Data:    toAlarmResponse(created),
	})
}

func (h *Handler) updateAlarm(w http.ResponseWriter, r *http.Request) {
	var req alarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")

		return
	}

	updated, err := h.lifecycle.Update(r.Context(), req.toDomain(chi.URLParam(r, "id")))
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toAlarmResponse(updated), "")
}

func (h *Handler) toggleAlarm(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.lifecycle.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toAlarmResponse(toggled), "")
}

func (h *Handler) deleteAlarm(w http.ResponseWriter, r *http.Request) {
	if err := h.lifecycle.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, nil, "alarm deleted")
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	current, err := h.settings.Get(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toSettingsResponse(current), "")
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")

		return
	}

	for _, code := range req.SelectedBooks {
		if _, ok := passagedomain.BookByCode(code); !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown book code %q", code))

			return
		}
	}

	updated := &settings.Settings{
		UseFamousVerses: req.UseFamousVerses,
		SelectedBooks:   req.SelectedBooks,
	}

	if err := h.settings.Put(r.Context(), updated); err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toSettingsResponse(updated), "")
}

func (h *Handler) getEpisode(w http.ResponseWriter, r *http.Request) {
	view, err := h.lifecycle.Episode(r.Context(), chi.URLParam(r, "alarmID"))
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toEpisodeResponse(view), "")
}

func (h *Handler) episodeInput(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")

		return
	}

	result, view, err := h.lifecycle.Input(r.Context(), chi.URLParam(r, "alarmID"), req.Input)
	if err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, toInputResponse(result, view), "")
}

func (h *Handler) snoozeEpisode(w http.ResponseWriter, r *http.Request) {
	if err := h.lifecycle.Snooze(r.Context(), chi.URLParam(r, "alarmID")); err != nil {
		h.respondFailure(w, r, err)

		return
	}

	respondSuccess(w, nil, "alarm snoozed")
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, map[string]string{"status": "ok"}, "")
}

// respondFailure maps service errors onto HTTP statuses.
func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, alarmrepo.ErrNotFound):
		respondError(w, http.StatusNotFound, "alarm not found")
	case errors.Is(err, lifecycle.ErrNoEpisode):
		respondError(w, http.StatusNotFound, "alarm is not ringing")
	case errors.Is(err, lifecycle.ErrPassageLoading):
		respondError(w, http.StatusConflict, "passage is still loading")
	case errors.Is(err, lifecycle.ErrSnoozeDisabled):
		respondError(w, http.StatusConflict, "snooze is disabled for this alarm")
	case errors.Is(err, lifecycle.ErrInvalidAlarm):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorKV(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)

		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
