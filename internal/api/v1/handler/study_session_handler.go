package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// StudySessionHandler handles study session endpoints
type StudySessionHandler struct {
	sessionService service.StudySessionService
	validate       *validator.Validate
	logger         zerolog.Logger
}

// NewStudySessionHandler creates a new StudySessionHandler
func NewStudySessionHandler(sessionService service.StudySessionService, validate *validator.Validate, logger zerolog.Logger) *StudySessionHandler {
	return &StudySessionHandler{sessionService: sessionService, validate: validate, logger: logger}
}

// RegisterRoutes mounts study session routes
func (h *StudySessionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/study-sessions", h.handleSessions)
	mux.HandleFunc("/study-sessions/", h.handleSession)
}

func (h *StudySessionHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/study-sessions" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.listSessions(w, r)
	case http.MethodPost:
		h.createSession(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *StudySessionHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimPrefix(r.URL.Path, "/study-sessions/")
	if sessionID == "" || strings.Contains(sessionID, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.deleteSession(w, r, sessionID)
}

// listSessions godoc
// @Summary List all study sessions
// @Description Each session carries its resolved course reference, if any.
// @Tags study-sessions
// @Produce json
// @Success 200 {array} model.StudySessionWithCourse
// @Router /study-sessions [get]
func (h *StudySessionHandler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.ListStudySessions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list study sessions")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// createSession godoc
// @Summary Log a study session
// @Tags study-sessions
// @Accept json
// @Produce json
// @Param session body dto.StudySessionCreateDTO true "Study session request"
// @Success 201 {object} model.StudySession
// @Failure 400 {object} errorBody
// @Router /study-sessions [post]
func (h *StudySessionHandler) createSession(w http.ResponseWriter, r *http.Request) {
	var req dto.StudySessionCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	session := &model.StudySession{
		CourseID: req.CourseID,
	}
	if req.Date != nil {
		session.Date = *req.Date
	}
	if req.Duration != nil {
		session.Duration = *req.Duration
	}
	if req.Topic != nil {
		session.Topic = *req.Topic
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}

	created, err := h.sessionService.CreateStudySession(r.Context(), session)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create study session")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// deleteSession godoc
// @Summary Delete a study session
// @Tags study-sessions
// @Produce json
// @Param id path string true "Study session ID"
// @Success 200 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /study-sessions/{id} [delete]
func (h *StudySessionHandler) deleteSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := h.sessionService.DeleteStudySession(r.Context(), sessionID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Study session deleted successfully"})
}
