package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/springvale/admissions/internal/model"
)

type ApplicationRepository interface {
	Create(app *model.Application) (int64, error)
	All() ([]model.Application, error)
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *applicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a new application and returns the assigned id.
// CreatedAt and ID are set on the passed record.
func (r *applicationRepository) Create(app *model.Application) (int64, error) {
	app.CreatedAt = time.Now().UTC()

	query := `INSERT INTO applications (name, email, phone, class_level, notes, file_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	res, err := r.db.Exec(query,
		app.Name,
		app.Email,
		app.Phone,
		app.ClassLevel,
		app.Notes,
		app.FilePath,
		app.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}

	app.ID = id
	return id, nil
}

// All returns every application, newest first. The id tiebreak keeps the
// ordering deterministic for rows created within the same timestamp.
func (r *applicationRepository) All() ([]model.Application, error) {
	apps := []model.Application{}
	query := `SELECT * FROM applications ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&apps, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select applications: %w", err)
	}

	return apps, nil
}
