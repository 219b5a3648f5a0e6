package dto

import (
	"strconv"
	"time"

	"courseapi/internal/model"
)

// CoursePayloadDTO is the full-record body for course create and update
// requests. Required fields are pointers so an absent value is
// distinguishable from a zero one: on_discount must be an explicit true or
// false, and price/discount_price must be present and non-zero. Field order
// follows the order missing fields are reported in.
type CoursePayloadDTO struct {
	ID            *int64   `json:"id,omitempty"`
	OnDiscount    *bool    `json:"on_discount" validate:"required"`
	Price         *float64 `json:"price" validate:"required,ne=0"`
	Title         string   `json:"title" validate:"required"`
	DiscountPrice *float64 `json:"discount_price" validate:"required,ne=0"`
	Description   *string  `json:"description,omitempty"`
	ImagePath     *string  `json:"image_path,omitempty"`
}

// ToModel builds a Course from the validated payload.
func (p *CoursePayloadDTO) ToModel() *model.Course {
	c := &model.Course{
		Title:         p.Title,
		OnDiscount:    *p.OnDiscount,
		Price:         *p.Price,
		DiscountPrice: *p.DiscountPrice,
		Description:   p.Description,
		ImagePath:     p.ImagePath,
	}
	if p.ID != nil {
		c.ID = *p.ID
	}
	return c
}

// CourseSheetRow is one record description in an uploaded course sheet.
// Unlike CoursePayloadDTO there is no presence validation: absent fields
// default per the schema, notably on_discount to false.
type CourseSheetRow struct {
	Title         string     `json:"title"`
	OnDiscount    bool       `json:"on_discount"`
	Price         float64    `json:"price"`
	DiscountPrice float64    `json:"discount_price"`
	Description   *string    `json:"description"`
	ImagePath     *string    `json:"image_path"`
	DateCreated   *time.Time `json:"date_created"`
	DateUpdated   *time.Time `json:"date_updated"`
}

// ToModel builds a Course from one sheet row. Absent timestamps stay zero
// and are assigned by the store on insert.
func (r *CourseSheetRow) ToModel() model.Course {
	c := model.Course{
		Title:         r.Title,
		OnDiscount:    r.OnDiscount,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		Description:   r.Description,
		ImagePath:     r.ImagePath,
	}
	if r.DateCreated != nil {
		c.DateCreated = *r.DateCreated
	}
	if r.DateUpdated != nil {
		c.DateUpdated = *r.DateUpdated
	}
	return c
}

// CourseResponseDTO is the wire shape of a course: prices as one-decimal
// strings, timestamps as ISO-8601.
type CourseResponseDTO struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OnDiscount    bool    `json:"on_discount"`
	Price         string  `json:"price"`
	DiscountPrice string  `json:"discount_price"`
	Description   *string `json:"description"`
	ImagePath     *string `json:"image_path"`
	DateCreated   string  `json:"date_created"`
	DateUpdated   string  `json:"date_updated"`
}

// NewCourseResponse serializes a course for API responses.
func NewCourseResponse(c *model.Course) CourseResponseDTO {
	return CourseResponseDTO{
		ID:            c.ID,
		Title:         c.Title,
		OnDiscount:    c.OnDiscount,
		Price:         formatPrice(c.Price),
		DiscountPrice: formatPrice(c.DiscountPrice),
		Description:   c.Description,
		ImagePath:     c.ImagePath,
		DateCreated:   c.DateCreated.UTC().Format(time.RFC3339Nano),
		DateUpdated:   c.DateUpdated.UTC().Format(time.RFC3339Nano),
	}
}

// NewCourseListResponse serializes a page of courses. The result is never
// nil so an empty page encodes as [] rather than null.
func NewCourseListResponse(courses []model.Course) []CourseResponseDTO {
	out := make([]CourseResponseDTO, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseResponse(&courses[i]))
	}
	return out
}

// formatPrice renders a price with one decimal place, matching the
// numeric(15,1) column it came from.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// DataResponse wraps a successful payload.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse carries a human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}
