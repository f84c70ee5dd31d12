// Package handler exposes the change-log query and ad hoc create APIs.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"chronicle/internal/changelog"
	"chronicle/internal/changelog/pipeline"
	"chronicle/internal/platform/middleware"
)

// Handler serves /v1/changelogs.
type Handler struct {
	pipeline  *pipeline.Pipeline
	logger    *slog.Logger
	validator *middleware.Validator
	validate  *validator.Validate
}

func New(p *pipeline.Pipeline, logger *slog.Logger, tokenValidator *middleware.Validator) *Handler {
	return &Handler{
		pipeline:  p,
		logger:    logger,
		validator: tokenValidator,
		validate:  validator.New(),
	}
}

// Register mounts the change-log routes.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequireAuth(h.validator, h.logger))
	router.Get("/v1/changelogs", h.handleList)
	router.Post("/v1/changelogs", h.handleCreate)
	r.Mount("/", router)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	subjectID := q.Get("subjectId")
	if subjectID == "" {
		writeError(w, http.StatusBadRequest, "subjectId is required")
		return
	}

	var kinds []changelog.Kind
	if raw := q.Get("kinds"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			kind, err := changelog.ParseKind(strings.TrimSpace(name))
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			kinds = append(kinds, kind)
		}
	}

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	locale := q.Get("locale")
	if locale == "" {
		locale = r.Header.Get("Accept-Language")
	}

	result, err := h.pipeline.ChangeLogs(ctx, subjectID, kinds, locale, page, pageSize)
	if err != nil {
		h.logger.ErrorContext(ctx, "list change logs",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, http.StatusInternalServerError, "failed to list change logs")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// createRequest is the ad hoc create body; old/new values are nullable by
// omission.
type createRequest struct {
	SubjectID   string            `json:"subjectId" validate:"required"`
	SubjectType string            `json:"subjectType" validate:"required"`
	Column      string            `json:"column" validate:"required"`
	OldValue    *string           `json:"oldValue"`
	NewValue    *string           `json:"newValue"`
	Auxiliary   map[string]string `json:"auxiliary"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	kind, err := changelog.ParseKind(req.SubjectType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	editor := middleware.GetEditor(ctx)
	rec, err := h.pipeline.CreateChangeLog(ctx, kind, req.SubjectID, req.Column, req.OldValue, req.NewValue, editor, req.Auxiliary)
	if err != nil {
		h.logger.ErrorContext(ctx, "create change log",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		writeError(w, http.StatusInternalServerError, "failed to create change log")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        rec.ID.String(),
		"createdAt": rec.CreatedAt,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
