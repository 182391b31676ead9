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

// TopicHandler handles topic-related endpoints
type TopicHandler struct {
	topicService service.TopicService
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicService service.TopicService, validate *validator.Validate, logger zerolog.Logger) *TopicHandler {
	return &TopicHandler{topicService: topicService, validate: validate, logger: logger}
}

// RegisterRoutes mounts topic routes
func (h *TopicHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/topics/course/", h.handleTopicsByCourse)
	mux.HandleFunc("/topics/", h.handleTopic)
}

// handleTopicsByCourse covers GET/POST /topics/course/{courseId},
// POST /topics/course/{courseId}/generate and
// GET /topics/course/{courseId}/tree.
func (h *TopicHandler) handleTopicsByCourse(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/topics/course/"), "/")
	if parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	courseID := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.listTopics(w, r, courseID)
	case len(parts) == 1 && r.Method == http.MethodPost:
		h.createTopic(w, r, courseID)
	case len(parts) == 2 && parts[1] == "generate" && r.Method == http.MethodPost:
		h.generateTopics(w, r, courseID)
	case len(parts) == 2 && parts[1] == "tree" && r.Method == http.MethodGet:
		h.getTopicTree(w, r, courseID)
	default:
		http.NotFound(w, r)
	}
}

// handleTopic covers PUT /topics/{id} and DELETE /topics/{id}/course/{courseId}.
func (h *TopicHandler) handleTopic(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/topics/"), "/")
	switch {
	case r.Method == http.MethodPut && len(parts) == 1 && parts[0] != "":
		h.updateTopic(w, r, parts[0])
	case r.Method == http.MethodDelete && len(parts) == 3 && parts[1] == "course" && parts[0] != "" && parts[2] != "":
		h.deleteTopic(w, r, parts[0], parts[2])
	default:
		http.NotFound(w, r)
	}
}

// listTopics godoc
// @Summary List a course's topics (flat)
// @Tags topics
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} model.Topic
// @Router /topics/course/{courseId} [get]
func (h *TopicHandler) listTopics(w http.ResponseWriter, r *http.Request, courseID string) {
	topics, err := h.topicService.ListTopicsByCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to list topics")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

// getTopicTree godoc
// @Summary Get a course's topics as an ordered forest
// @Tags topics
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} hierarchy.Node
// @Router /topics/course/{courseId}/tree [get]
func (h *TopicHandler) getTopicTree(w http.ResponseWriter, r *http.Request, courseID string) {
	tree, err := h.topicService.GetTopicTree(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to build topic tree")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

// createTopic godoc
// @Summary Create a topic under a course
// @Description Creates a topic and appends its id to the course's topic list.
// @Tags topics
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param topic body dto.TopicCreateDTO true "Topic creation request"
// @Success 201 {object} model.Topic
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /topics/course/{courseId} [post]
func (h *TopicHandler) createTopic(w http.ResponseWriter, r *http.Request, courseID string) {
	var req dto.TopicCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	topic := &model.Topic{
		CourseID: courseID,
		Title:    req.Title,
		ParentID: req.ParentID,
	}
	if req.Order != nil {
		topic.Order = *req.Order
	}

	created, err := h.topicService.CreateTopic(r.Context(), topic)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to create topic")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// generateTopics godoc
// @Summary Generate topics from program text
// @Description Creates one root topic per non-empty line, ordered by input position.
// @Tags topics
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.GenerateTopicsDTO true "Program text"
// @Success 201 {array} model.Topic
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /topics/course/{courseId}/generate [post]
func (h *TopicHandler) generateTopics(w http.ResponseWriter, r *http.Request, courseID string) {
	var req dto.GenerateTopicsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	created, err := h.topicService.GenerateTopics(r.Context(), courseID, req.ProgramText)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to generate topics")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// updateTopic godoc
// @Summary Update a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param topic body dto.TopicUpdateDTO true "Partial topic fields"
// @Success 200 {object} model.Topic
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /topics/{id} [put]
func (h *TopicHandler) updateTopic(w http.ResponseWriter, r *http.Request, topicID string) {
	var req dto.TopicUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	topic, err := h.topicService.GetTopicByID(r.Context(), topicID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if topic == nil {
		writeError(w, http.StatusNotFound, "Topic not found")
		return
	}

	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.ParentID != nil {
		topic.ParentID = req.ParentID
	}
	if req.Completed != nil {
		topic.Completed = *req.Completed
	}
	if req.Order != nil {
		topic.Order = *req.Order
	}

	updated, err := h.topicService.UpdateTopic(r.Context(), topic)
	if err != nil {
		h.logger.Error().Err(err).Str("topic_id", topicID).Msg("Failed to update topic")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteTopic godoc
// @Summary Delete a topic
// @Description Deletes a topic and removes its id from the course's topic list.
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /topics/{id}/course/{courseId} [delete]
func (h *TopicHandler) deleteTopic(w http.ResponseWriter, r *http.Request, topicID, courseID string) {
	if err := h.topicService.DeleteTopic(r.Context(), topicID, courseID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Topic deleted"})
}
