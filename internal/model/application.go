package model

import (
	"time"
)

// Application is one admissions submission. Records are created once and
// never updated or deleted by this service.
type Application struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	ClassLevel *string   `db:"class_level" json:"class_level"`
	Notes      *string   `db:"notes" json:"notes"`
	FilePath   *string   `db:"file_path" json:"file_path"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
