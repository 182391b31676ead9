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

// LessonHandler handles lesson-related endpoints
type LessonHandler struct {
	lessonService service.LessonService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewLessonHandler creates a new LessonHandler
func NewLessonHandler(lessonService service.LessonService, validate *validator.Validate, logger zerolog.Logger) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, validate: validate, logger: logger}
}

// RegisterRoutes mounts lesson routes. The course-scoped prefix is more
// specific, so ServeMux routes it ahead of the bare /lessons/ prefix.
func (h *LessonHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/lessons/course/", h.handleLessonsByCourse)
	mux.HandleFunc("/lessons/", h.handleLesson)
}

// handleLessonsByCourse covers GET and POST /lessons/course/{courseId}.
func (h *LessonHandler) handleLessonsByCourse(w http.ResponseWriter, r *http.Request) {
	courseID := strings.TrimPrefix(r.URL.Path, "/lessons/course/")
	if courseID == "" || strings.Contains(courseID, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.listLessons(w, r, courseID)
	case http.MethodPost:
		h.createLesson(w, r, courseID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleLesson covers PUT /lessons/{id} and
// DELETE /lessons/{id}/course/{courseId}.
func (h *LessonHandler) handleLesson(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/lessons/"), "/")
	switch {
	case r.Method == http.MethodPut && len(parts) == 1 && parts[0] != "":
		h.updateLesson(w, r, parts[0])
	case r.Method == http.MethodDelete && len(parts) == 3 && parts[1] == "course" && parts[0] != "" && parts[2] != "":
		h.deleteLesson(w, r, parts[0], parts[2])
	default:
		http.NotFound(w, r)
	}
}

// listLessons godoc
// @Summary List a course's lessons
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} model.Lesson
// @Router /lessons/course/{courseId} [get]
func (h *LessonHandler) listLessons(w http.ResponseWriter, r *http.Request, courseID string) {
	lessons, err := h.lessonService.ListLessonsByCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to list lessons")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

// createLesson godoc
// @Summary Create a lesson under a course
// @Description Creates a lesson and appends its id to the course's lesson list.
// @Tags lessons
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lesson body dto.LessonCreateDTO true "Lesson creation request"
// @Success 201 {object} model.Lesson
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /lessons/course/{courseId} [post]
func (h *LessonHandler) createLesson(w http.ResponseWriter, r *http.Request, courseID string) {
	var req dto.LessonCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	lesson := &model.Lesson{
		CourseID: courseID,
		Title:    req.Title,
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.Notes != nil {
		lesson.Notes = *req.Notes
	}
	if req.Date != nil {
		lesson.Date = *req.Date
	}

	created, err := h.lessonService.CreateLesson(r.Context(), lesson)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to create lesson")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// updateLesson godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param lesson body dto.LessonUpdateDTO true "Partial lesson fields"
// @Success 200 {object} model.Lesson
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /lessons/{id} [put]
func (h *LessonHandler) updateLesson(w http.ResponseWriter, r *http.Request, lessonID string) {
	var req dto.LessonUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	lesson, err := h.lessonService.GetLessonByID(r.Context(), lessonID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if lesson == nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.Completed != nil {
		lesson.Completed = *req.Completed
	}
	if req.Notes != nil {
		lesson.Notes = *req.Notes
	}
	if req.Date != nil {
		lesson.Date = *req.Date
	}

	updated, err := h.lessonService.UpdateLesson(r.Context(), lesson)
	if err != nil {
		h.logger.Error().Err(err).Str("lesson_id", lessonID).Msg("Failed to update lesson")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteLesson godoc
// @Summary Delete a lesson
// @Description Deletes a lesson and removes its id from the course's lesson list.
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /lessons/{id}/course/{courseId} [delete]
func (h *LessonHandler) deleteLesson(w http.ResponseWriter, r *http.Request, lessonID, courseID string) {
	if err := h.lessonService.DeleteLesson(r.Context(), lessonID, courseID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lesson deleted"})
}
