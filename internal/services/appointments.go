package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

// AppointmentReader defines read-only operations for appointments.
type AppointmentReader interface {
	List(ctx context.Context) ([]models.AppointmentRow, error)
}

// AppointmentWriter defines write operations for appointments. The
// repository validates doctor and patient references before writing.
type AppointmentWriter interface {
	Save(ctx context.Context, visitDate, visitTime string, doctorID, patientID int64) (int64, error)
	Update(ctx context.Context, id int64, visitDate, visitTime string, doctorID, patientID int64) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentService performs appointment mutations and records each
// successful one in the audit log, exactly once. A referential conflict
// produces no appointment row and no audit record.
type AppointmentService struct {
	reader AppointmentReader
	writer AppointmentWriter
	audit  Recorder
}

func NewAppointmentService(reader AppointmentReader, writer AppointmentWriter, audit Recorder) *AppointmentService {
	return &AppointmentService{reader: reader, writer: writer, audit: audit}
}

func (svc *AppointmentService) List(ctx context.Context) ([]models.AppointmentRow, error) {
	return svc.reader.List(ctx)
}

func (svc *AppointmentService) Create(ctx context.Context, actor *uuid.UUID, visitDate, visitTime string, doctorID, patientID int64) (int64, error) {
	id, err := svc.writer.Save(ctx, visitDate, visitTime, doctorID, patientID)
	if err != nil {
		logger.Log.Errorw("failed to insert appointment",
			"doctor_id", doctorID, "patient_id", patientID, "error", err)
		return 0, err
	}

	svc.audit.Record(ctx, actor, models.ActionCreate, "appointments", id,
		fmt.Sprintf("appointment on %s %s (doctor %d, patient %d)", visitDate, visitTime, doctorID, patientID))
	return id, nil
}

func (svc *AppointmentService) Update(ctx context.Context, actor *uuid.UUID, id int64, visitDate, visitTime string, doctorID, patientID int64) error {
	if err := svc.writer.Update(ctx, id, visitDate, visitTime, doctorID, patientID); err != nil {
		logger.Log.Errorw("failed to update appointment", "appointment_id", id, "error", err)
		return err
	}

	svc.audit.Record(ctx, actor, models.ActionUpdate, "appointments", id,
		fmt.Sprintf("appointment moved to %s %s (doctor %d, patient %d)", visitDate, visitTime, doctorID, patientID))
	return nil
}

func (svc *AppointmentService) Delete(ctx context.Context, actor *uuid.UUID, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete appointment", "appointment_id", id, "error", err)
		return err
	}

	svc.audit.Record(ctx, actor, models.ActionDelete, "appointments", id, "appointment deleted")
	return nil
}
