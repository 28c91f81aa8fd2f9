package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

type PatientReadRepository struct {
	db *sqlx.DB
}

func NewPatientReadRepository(db *sqlx.DB) *PatientReadRepository {
	return &PatientReadRepository{db: db}
}

func (r *PatientReadRepository) List(ctx context.Context) ([]models.Patient, error) {
	const query = `
		SELECT patient_id, name, contact
		FROM patients
		ORDER BY patient_id
	`

	var patients []models.Patient
	err := r.db.SelectContext(ctx, &patients, query)

	logger.Log.Infow("patient select",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(patients),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return patients, nil
}

type PatientWriteRepository struct {
	db *sqlx.DB
}

func NewPatientWriteRepository(db *sqlx.DB) *PatientWriteRepository {
	return &PatientWriteRepository{db: db}
}

// Save inserts a patient and returns the new id.
func (r *PatientWriteRepository) Save(ctx context.Context, name, contact string) (int64, error) {
	const query = `
		INSERT INTO patients (name, contact)
		VALUES ($1, $2)
		RETURNING patient_id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, name, contact)

	logger.Log.Infow("patient insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, contact},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites a patient row. ErrNotFound when the id matches nothing.
func (r *PatientWriteRepository) Update(ctx context.Context, id int64, name, contact string) error {
	const query = `
		UPDATE patients
		SET name = $2, contact = $3
		WHERE patient_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, name, contact)

	logger.Log.Infow("patient update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, name, contact},
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a patient row. A patient still referenced by an
// appointment fails with ErrReferentialConflict; nothing cascades.
func (r *PatientWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM patients WHERE patient_id = $1`

	res, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("patient delete",
		"query", query,
		"args", []any{id},
		"error", err,
	)

	if pgErrCode(err) == pgForeignKeyViolation {
		return ErrReferentialConflict
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
