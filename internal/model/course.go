package model

import "time"

// Course represents a single course record in the catalog.
// Description and ImagePath are nullable in the database, so they are
// carried as pointers; everything else is required by the schema.
type Course struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	OnDiscount    bool      `db:"on_discount" json:"on_discount"`
	Price         float64   `db:"price" json:"price"`
	DiscountPrice float64   `db:"discount_price" json:"discount_price"`
	Description   *string   `db:"description" json:"description"`
	ImagePath     *string   `db:"image_path" json:"image_path"`
	DateCreated   time.Time `db:"date_created" json:"date_created"`
	DateUpdated   time.Time `db:"date_updated" json:"date_updated"`
}
