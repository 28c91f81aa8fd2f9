package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

type AppointmentReadRepository struct {
	db *sqlx.DB
}

func NewAppointmentReadRepository(db *sqlx.DB) *AppointmentReadRepository {
	return &AppointmentReadRepository{db: db}
}

// List returns appointments joined with the referenced doctor and patient
// names.
func (r *AppointmentReadRepository) List(ctx context.Context) ([]models.AppointmentRow, error) {
	const query = `
		SELECT a.appointment_id,
		       a.visit_date::text AS visit_date,
		       to_char(a.visit_time, 'HH24:MI') AS visit_time,
		       a.doctor_id,
		       d.name AS doctor_name,
		       a.patient_id,
		       p.name AS patient_name
		FROM appointments a
		JOIN doctors d ON d.doctor_id = a.doctor_id
		JOIN patients p ON p.patient_id = a.patient_id
		ORDER BY a.visit_date, a.visit_time, a.appointment_id
	`

	var rows []models.AppointmentRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("appointment select",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

type AppointmentWriteRepository struct {
	db *sqlx.DB
}

func NewAppointmentWriteRepository(db *sqlx.DB) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{db: db}
}

// referencesExist verifies that both foreign keys resolve before a write.
// The DB-level constraints remain the backstop for races.
func (r *AppointmentWriteRepository) referencesExist(ctx context.Context, doctorID, patientID int64) error {
	const query = `
		SELECT EXISTS (SELECT 1 FROM doctors WHERE doctor_id = $1)
		   AND EXISTS (SELECT 1 FROM patients WHERE patient_id = $2)
	`

	var ok bool
	if err := r.db.GetContext(ctx, &ok, query, doctorID, patientID); err != nil {
		return err
	}
	if !ok {
		return ErrReferentialConflict
	}
	return nil
}

// Save inserts an appointment and returns the new id. A doctor or patient
// id that resolves to nothing fails with ErrReferentialConflict and writes
// no row.
func (r *AppointmentWriteRepository) Save(ctx context.Context, visitDate, visitTime string, doctorID, patientID int64) (int64, error) {
	if err := r.referencesExist(ctx, doctorID, patientID); err != nil {
		return 0, err
	}

	const query = `
		INSERT INTO appointments (visit_date, visit_time, doctor_id, patient_id)
		VALUES ($1::date, $2::time, $3, $4)
		RETURNING appointment_id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, visitDate, visitTime, doctorID, patientID)

	logger.Log.Infow("appointment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{visitDate, visitTime, doctorID, patientID},
		"error", err,
	)

	if pgErrCode(err) == pgForeignKeyViolation {
		return 0, ErrReferentialConflict
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AppointmentWriteRepository) Update(ctx context.Context, id int64, visitDate, visitTime string, doctorID, patientID int64) error {
	if err := r.referencesExist(ctx, doctorID, patientID); err != nil {
		return err
	}

	const query = `
		UPDATE appointments
		SET visit_date = $2::date, visit_time = $3::time, doctor_id = $4, patient_id = $5
		WHERE appointment_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, visitDate, visitTime, doctorID, patientID)

	logger.Log.Infow("appointment update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, visitDate, visitTime, doctorID, patientID},
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

func (r *AppointmentWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM appointments WHERE appointment_id = $1`

	res, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("appointment delete",
		"query", query,
		"args", []any{id},
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
