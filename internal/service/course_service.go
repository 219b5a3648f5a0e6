package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"courseapi/internal/apperror"
	"courseapi/internal/model"
	"courseapi/internal/pagination"
	"courseapi/internal/repository"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, id int64) (*model.Course, error)
	// UpdateCourse overwrites an existing course with the given record
	UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, id int64) error
	// ListCourses returns one page of courses matching the title words
	ListCourses(ctx context.Context, words []string, page pagination.Params) ([]model.Course, error)
	// ImportCourses inserts an uploaded batch of courses, all or nothing
	ImportCourses(ctx context.Context, courses []model.Course) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

// CreateCourse creates a new course record
func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, apperror.Query(err)
	}
	return c, nil
}

// GetCourseByID retrieves a course by its ID
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	c, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, apperror.Query(err)
	}
	if c == nil {
		return nil, apperror.CourseNotFound(strconv.FormatInt(id, 10))
	}
	return c, nil
}

// UpdateCourse overwrites an existing course record. Every editable field is
// taken from the given record; date_updated is refreshed by the store.
func (s *courseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	existing, err := s.repo.GetCourseByID(ctx, c.ID)
	if err != nil {
		return nil, apperror.Query(err)
	}
	if existing == nil {
		return nil, apperror.CourseNotFound(strconv.FormatInt(c.ID, 10))
	}

	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Deleted between the existence check and the write.
			return nil, apperror.CourseNotFound(strconv.FormatInt(c.ID, 10))
		}
		return nil, apperror.Query(err)
	}
	return c, nil
}

// DeleteCourse deletes a course by its ID. Deleting an id a second time
// reports not-found, not a silent success.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.CourseNotFound(strconv.FormatInt(id, 10))
		}
		return apperror.Query(err)
	}
	return nil
}

// ListCourses returns the requested page of matching courses
func (s *courseService) ListCourses(ctx context.Context, words []string, page pagination.Params) ([]model.Course, error) {
	courses, err := s.repo.SearchCourses(ctx, words, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperror.Query(err)
	}
	return courses, nil
}

// ImportCourses inserts the uploaded batch in one store operation
func (s *courseService) ImportCourses(ctx context.Context, courses []model.Course) error {
	if err := s.repo.BulkInsertCourses(ctx, courses); err != nil {
		return apperror.Import(err)
	}
	return nil
}
