package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"courseapi/internal/api/v1/dto"
	"courseapi/internal/apperror"
	"courseapi/internal/model"
	"courseapi/internal/pagination"
	"courseapi/internal/repository"
	"courseapi/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// maxSheetUploadBytes caps the multipart memory buffer for course sheets.
const maxSheetUploadBytes = 32 << 20

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/course", h.handleCollection)
	mux.HandleFunc("/course/", h.handleItem)
}

func (h *CourseHandler) handleCollection(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/course" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.listCourses(w, r)
	case http.MethodPost:
		h.createCourse(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *CourseHandler) handleItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/course/")
	if rest == "data_upload" {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		h.uploadCourseSheet(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.getCourse(w, r, rest)
	case http.MethodPut:
		h.updateCourse(w, r, rest)
	case http.MethodDelete:
		h.deleteCourse(w, r, rest)
	default:
		http.NotFound(w, r)
	}
}

// listCourses godoc
// @Summary List courses
// @Description Returns one page of courses, optionally filtered by comma-separated title words.
// @Tags courses
// @Produce json
// @Param page-number query int false "1-based page number (default 1)"
// @Param page-size query int false "Page size (default 10)"
// @Param title-words query string false "Comma-separated search words"
// @Success 200 {object} dto.DataResponse
// @Router /course [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	words := repository.SplitTitleWords(q.Get("title-words"))
	page := pagination.Parse(q.Get("page-size"), q.Get("page-number"))

	courses, err := h.courseService.ListCourses(r.Context(), words, page)
	if err != nil {
		h.logger.Error().Err(err).Msg("course list query failed")
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Course 0 does not exist"})
		return
	}
	writeJSON(w, http.StatusOK, dto.DataResponse{Data: dto.NewCourseListResponse(courses)})
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a single course by its id.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Router /course/{id} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.CourseNotFound(rawID).Message})
		return
	}

	course, err := h.courseService.GetCourseByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			h.logger.Error().Err(err).Int64("course_id", id).Msg("course lookup failed")
		}
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.CourseNotFound(rawID).Message})
		return
	}
	writeJSON(w, http.StatusOK, dto.DataResponse{Data: dto.NewCourseResponse(course)})
}

// createCourse godoc
// @Summary Create a course
// @Description Creates a course after validating that every required field is present.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CoursePayloadDTO true "Course creation request"
// @Success 200 {object} dto.DataResponse
// @Router /course [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CoursePayloadDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("course create payload decode failed")
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Error in saving Course data."})
		return
	}
	if fields := h.missingFields(&req); len(fields) > 0 {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.MissingFields(fields).Message})
		return
	}

	created, err := h.courseService.CreateCourse(r.Context(), req.ToModel())
	if err != nil {
		h.logger.Error().Err(err).Msg("course create failed")
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Error in saving Course data."})
		return
	}
	writeJSON(w, http.StatusOK, dto.DataResponse{Data: dto.NewCourseResponse(created)})
}

// updateCourse godoc
// @Summary Update a course
// @Description Overwrites every editable field of an existing course. The payload id must equal the route id.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CoursePayloadDTO true "Full course record including id"
// @Success 200 {object} dto.DataResponse
// @Router /course/{id} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.CourseNotFound(rawID).Message})
		return
	}

	var req dto.CoursePayloadDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("course update payload decode failed")
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.IDMismatch().Message})
		return
	}
	if req.ID == nil || *req.ID != id {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.IDMismatch().Message})
		return
	}
	if fields := h.missingFields(&req); len(fields) > 0 {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.MissingFields(fields).Message})
		return
	}

	updated, err := h.courseService.UpdateCourse(r.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.CourseNotFound(rawID).Message})
			return
		}
		h.logger.Error().Err(err).Int64("course_id", id).Msg("course update failed")
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Error in saving Course data."})
		return
	}
	writeJSON(w, http.StatusOK, dto.DataResponse{Data: dto.NewCourseResponse(updated)})
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course by its id. A repeated delete reports that the course does not exist.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /course/{id} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.CourseNotFound(rawID).Message})
		return
	}

	if err := h.courseService.DeleteCourse(r.Context(), id); err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			h.logger.Error().Err(err).Int64("course_id", id).Msg("course delete failed")
		}
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.CourseNotFound(rawID).Message})
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "The specified course was deleted"})
}

// uploadCourseSheet godoc
// @Summary Bulk upload courses
// @Description Decodes an uploaded JSON array of course descriptions and inserts them in one batch.
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param file formData file true "Course sheet (JSON array)"
// @Success 201 {object} dto.MessageResponse
// @Router /course/data_upload [post]
func (h *CourseHandler) uploadCourseSheet(w http.ResponseWriter, r *http.Request) {
	fail := func(err error, msg string) {
		h.logger.Error().Err(err).Msg(msg)
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: apperror.Import(err).Message})
	}

	if err := r.ParseMultipartForm(maxSheetUploadBytes); err != nil {
		fail(err, "course sheet multipart parse failed")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		fail(err, "course sheet file missing")
		return
	}
	defer file.Close()

	var rows []dto.CourseSheetRow
	if err := json.NewDecoder(file).Decode(&rows); err != nil {
		fail(err, "course sheet decode failed")
		return
	}

	courses := make([]model.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, rows[i].ToModel())
	}
	if err := h.courseService.ImportCourses(r.Context(), courses); err != nil {
		fail(err, "course sheet batch insert failed")
		return
	}
	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Success in uploading course sheet ."})
}

// missingFields runs struct validation and returns the json names of every
// missing or invalid field, in declaration order, deduplicated.
func (h *CourseHandler) missingFields(req *dto.CoursePayloadDTO) []string {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.logger.Error().Err(err).Msg("course payload validation failed")
		return []string{"payload"}
	}
	seen := make(map[string]bool, len(verrs))
	var fields []string
	for _, e := range verrs {
		name := e.Field()
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}
	return fields
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
