package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

// PatientReader defines read-only operations for patients.
type PatientReader interface {
	List(ctx context.Context) ([]models.Patient, error)
}

// PatientWriter defines write operations for patients.
type PatientWriter interface {
	Save(ctx context.Context, name, contact string) (int64, error)
	Update(ctx context.Context, id int64, name, contact string) error
	Delete(ctx context.Context, id int64) error
}

// PatientService performs patient mutations and records each successful
// one in the audit log, exactly once.
type PatientService struct {
	reader PatientReader
	writer PatientWriter
	audit  Recorder
}

func NewPatientService(reader PatientReader, writer PatientWriter, audit Recorder) *PatientService {
	return &PatientService{reader: reader, writer: writer, audit: audit}
}

func (svc *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return svc.reader.List(ctx)
}

func (svc *PatientService) Create(ctx context.Context, actor *uuid.UUID, name, contact string) (int64, error) {
	id, err := svc.writer.Save(ctx, name, contact)
	if err != nil {
		logger.Log.Errorw("failed to insert patient", "name", name, "error", err)
		return 0, err
	}

	svc.audit.Record(ctx, actor, models.ActionCreate, "patients", id,
		fmt.Sprintf("patient %q created", name))
	return id, nil
}

func (svc *PatientService) Update(ctx context.Context, actor *uuid.UUID, id int64, name, contact string) error {
	if err := svc.writer.Update(ctx, id, name, contact); err != nil {
		logger.Log.Errorw("failed to update patient", "patient_id", id, "error", err)
		return err
	}

	svc.audit.Record(ctx, actor, models.ActionUpdate, "patients", id,
		fmt.Sprintf("patient %q updated", name))
	return nil
}

func (svc *PatientService) Delete(ctx context.Context, actor *uuid.UUID, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete patient", "patient_id", id, "error", err)
		return err
	}

	svc.audit.Record(ctx, actor, models.ActionDelete, "patients", id, "patient deleted")
	return nil
}
