package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/helpmeclean/schedule-service/internal/domain"
	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
	"github.com/helpmeclean/schedule-service/pkg/models"
)

// ScheduleHandler exposes the calendar read and availability write
// endpoints. Identity comes from X-Actor-* headers set by the upstream
// auth proxy; this service trusts them.
type ScheduleHandler struct {
	scheduleService contract.ScheduleService
	validate        *validator.Validate
}

func New(scheduleService contract.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		validate:        validator.New(),
	}
}

func (h *ScheduleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/companies/{companyID}/calendar", h.handleCompanyCalendar)
		r.Get("/workers/{workerID}/calendar", h.handleWorkerCalendar)
		r.Put("/workers/{workerID}/overrides/{date}", h.handleSetOverride)
		r.Put("/workers/{workerID}/weekly/{dayOfWeek}", h.handleSetWeeklySlot)
	})
}

func (h *ScheduleHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

func (h *ScheduleHandler) handleCompanyCalendar(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	companyID, err := strconv.ParseInt(chi.URLParam(r, "companyID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "companyID must be numeric", "companyID")
		return
	}

	grid, err := h.scheduleService.WeekGrid(r.Context(), actor, companyID, r.URL.Query().Get("week"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, grid)
}

func (h *ScheduleHandler) handleWorkerCalendar(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "workerID must be numeric", "workerID")
		return
	}

	week, err := h.scheduleService.WorkerWeek(r.Context(), actor, workerID, r.URL.Query().Get("week"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, week)
}

func (h *ScheduleHandler) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "workerID must be numeric", "workerID")
		return
	}

	var req models.SetOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON body", "")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondValidatorError(w, err)
		return
	}

	override, err := h.scheduleService.SetDateOverride(r.Context(), actor, workerID, chi.URLParam(r, "date"), req.IsAvailable, req.StartTime, req.EndTime)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, override)
}

func (h *ScheduleHandler) handleSetWeeklySlot(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "workerID must be numeric", "workerID")
		return
	}

	dayOfWeek, err := strconv.Atoi(chi.URLParam(r, "dayOfWeek"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "dayOfWeek must be numeric", "dayOfWeek")
		return
	}

	var req models.SetWeeklySlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON body", "")
		return
	}
	req.DayOfWeek = dayOfWeek
	if err := h.validate.Struct(req); err != nil {
		h.respondValidatorError(w, err)
		return
	}

	slot, err := h.scheduleService.SetWeeklySlot(r.Context(), actor, workerID, req.DayOfWeek, req.IsAvailable, req.StartTime, req.EndTime)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, slot)
}

// actorFromRequest reads the caller identity from X-Actor-ID, X-Actor-Role
// and X-Actor-Company. A missing or malformed identity is a 401; the
// service layer decides what the actor may actually touch.
func (h *ScheduleHandler) actorFromRequest(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	id, err := strconv.ParseInt(r.Header.Get("X-Actor-ID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "missing or invalid X-Actor-ID", "")
		return entity.Actor{}, false
	}

	role := r.Header.Get("X-Actor-Role")
	if role != domain.RoleWorker && role != domain.RoleCompanyAdmin {
		h.respondError(w, http.StatusUnauthorized, "missing or invalid X-Actor-Role", "")
		return entity.Actor{}, false
	}

	actor := entity.Actor{ID: id, Role: role}
	if raw := r.Header.Get("X-Actor-Company"); raw != "" {
		companyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusUnauthorized, "invalid X-Actor-Company", "")
			return entity.Actor{}, false
		}
		actor.CompanyID = companyID
	}

	return actor, true
}

func (h *ScheduleHandler) respondServiceError(w http.ResponseWriter, err error) {
	var valErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.respondError(w, http.StatusForbidden, "not allowed", "")
	case errors.Is(err, domain.ErrWorkerNotFound):
		h.respondError(w, http.StatusNotFound, "worker not found", "")
	case errors.As(err, &valErr):
		h.respondError(w, http.StatusUnprocessableEntity, valErr.Message, valErr.Field)
	default:
		log.Printf("internal error: %v", err)
		h.respondError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func (h *ScheduleHandler) respondValidatorError(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		h.respondError(w, http.StatusUnprocessableEntity, "validation failed on '"+fieldErrs[0].Tag()+"'", fieldErrs[0].Field())
		return
	}
	h.respondError(w, http.StatusUnprocessableEntity, "validation failed", "")
}

func (h *ScheduleHandler) respondError(w http.ResponseWriter, status int, message, field string) {
	h.respondJSON(w, status, models.ErrorResponse{Error: message, Field: field})
}

func (h *ScheduleHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
