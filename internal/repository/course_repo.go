package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"courseapi/internal/model"

	"github.com/rs/zerolog"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID retrieves a course by its ID; (nil, nil) when absent
	GetCourseByID(ctx context.Context, id int64) (*model.Course, error)
	// UpdateCourse overwrites every editable field and refreshes date_updated
	UpdateCourse(ctx context.Context, c *model.Course) error
	// DeleteCourse removes a course; sql.ErrNoRows when the id is absent
	DeleteCourse(ctx context.Context, id int64) error
	// SearchCourses returns one page of courses matching the title words,
	// ordered by relevance then id (id only when no words are given)
	SearchCourses(ctx context.Context, words []string, limit, offset int) ([]model.Course, error)
	// BulkInsertCourses inserts all records in a single transaction
	BulkInsertCourses(ctx context.Context, courses []model.Course) error
}

type courseRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepo{db: db, logger: logger}
}

// CreateCourse inserts a new course and fills in the store-assigned id and timestamps
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO tbl_course (title, on_discount, price, discount_price, description, image_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_created, date_updated
	`
	return r.db.QueryRowContext(ctx, query,
		c.Title, c.OnDiscount, c.Price, c.DiscountPrice, c.Description, c.ImagePath).
		Scan(&c.ID, &c.DateCreated, &c.DateUpdated)
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `
		SELECT id, title, on_discount, price, discount_price, description, image_path, date_created, date_updated
		FROM tbl_course
		WHERE id = $1
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.OnDiscount,
		&c.Price,
		&c.DiscountPrice,
		&c.Description,
		&c.ImagePath,
		&c.DateCreated,
		&c.DateUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// UpdateCourse overwrites the editable fields of an existing course and
// returns the refreshed timestamps on the passed record
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE tbl_course
		SET title = $1, on_discount = $2, price = $3, discount_price = $4, description = $5, image_path = $6, date_updated = NOW()
		WHERE id = $7
		RETURNING date_created, date_updated
	`
	return r.db.QueryRowContext(ctx, query,
		c.Title, c.OnDiscount, c.Price, c.DiscountPrice, c.Description, c.ImagePath, c.ID).
		Scan(&c.DateCreated, &c.DateUpdated)
}

// DeleteCourse removes a course by its ID
func (r *courseRepo) DeleteCourse(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tbl_course WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SearchCourses returns one page of courses matching the given title words
func (r *courseRepo) SearchCourses(ctx context.Context, words []string, limit, offset int) ([]model.Course, error) {
	query, args := buildTitleSearch(words, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.OnDiscount,
			&c.Price,
			&c.DiscountPrice,
			&c.Description,
			&c.ImagePath,
			&c.DateCreated,
			&c.DateUpdated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}

// BulkInsertCourses inserts every record in one multi-row statement inside a
// transaction, so a failing row commits nothing. Zero-valued timestamps fall
// back to NOW() in the database.
func (r *courseRepo) BulkInsertCourses(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}

	var (
		placeholders []string
		args         []any
	)
	for i, c := range courses {
		base := i * 8
		placeholders = append(placeholders, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, COALESCE($%d, NOW()), COALESCE($%d, NOW()))",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args,
			c.Title, c.OnDiscount, c.Price, c.DiscountPrice, c.Description, c.ImagePath,
			nullableTime(c.DateCreated), nullableTime(c.DateUpdated))
	}

	query := `
		INSERT INTO tbl_course (title, on_discount, price, discount_price, description, image_path, date_created, date_updated)
		VALUES ` + strings.Join(placeholders, ", ")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin bulk insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error().Err(rbErr).Msg("bulk insert rollback failed")
		}
		return fmt.Errorf("failed to bulk insert courses: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk insert: %w", err)
	}
	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
