package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

type DoctorReadRepository struct {
	db *sqlx.DB
}

func NewDoctorReadRepository(db *sqlx.DB) *DoctorReadRepository {
	return &DoctorReadRepository{db: db}
}

func (r *DoctorReadRepository) List(ctx context.Context) ([]models.Doctor, error) {
	const query = `
		SELECT doctor_id, name, speciality
		FROM doctors
		ORDER BY doctor_id
	`

	var doctors []models.Doctor
	err := r.db.SelectContext(ctx, &doctors, query)

	logger.Log.Infow("doctor select",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(doctors),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return doctors, nil
}

type DoctorWriteRepository struct {
	db *sqlx.DB
}

func NewDoctorWriteRepository(db *sqlx.DB) *DoctorWriteRepository {
	return &DoctorWriteRepository{db: db}
}

func (r *DoctorWriteRepository) Save(ctx context.Context, name, speciality string) (int64, error) {
	const query = `
		INSERT INTO doctors (name, speciality)
		VALUES ($1, $2)
		RETURNING doctor_id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, name, speciality)

	logger.Log.Infow("doctor insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, speciality},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *DoctorWriteRepository) Update(ctx context.Context, id int64, name, speciality string) error {
	const query = `
		UPDATE doctors
		SET name = $2, speciality = $3
		WHERE doctor_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, name, speciality)

	logger.Log.Infow("doctor update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, name, speciality},
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

// Delete fails with ErrReferentialConflict while appointments still
// reference the doctor.
func (r *DoctorWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM doctors WHERE doctor_id = $1`

	res, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("doctor delete",
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
