package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

// DoctorReader defines read-only operations for doctors.
type DoctorReader interface {
	List(ctx context.Context) ([]models.Doctor, error)
}

// DoctorWriter defines write operations for doctors.
type DoctorWriter interface {
	Save(ctx context.Context, name, speciality string) (int64, error)
	Update(ctx context.Context, id int64, name, speciality string) error
	Delete(ctx context.Context, id int64) error
}

// DoctorService performs doctor mutations and records each successful one
// in the audit log, exactly once.
type DoctorService struct {
	reader DoctorReader
	writer DoctorWriter
	audit  Recorder
}

func NewDoctorService(reader DoctorReader, writer DoctorWriter, audit Recorder) *DoctorService {
	return &DoctorService{reader: reader, writer: writer, audit: audit}
}

func (svc *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return svc.reader.List(ctx)
}

func (svc *DoctorService) Create(ctx context.Context, actor *uuid.UUID, name, speciality string) (int64, error) {
	id, err := svc.writer.Save(ctx, name, speciality)
	if err != nil {
		logger.Log.Errorw("failed to insert doctor", "name", name, "error", err)
		return 0, err
	}

	svc.audit.Record(ctx, actor, models.ActionCreate, "doctors", id,
		fmt.Sprintf("doctor %q created", name))
	return id, nil
}

func (svc *DoctorService) Update(ctx context.Context, actor *uuid.UUID, id int64, name, speciality string) error {
	if err := svc.writer.Update(ctx, id, name, speciality); err != nil {
		logger.Log.Errorw("failed to update doctor", "doctor_id", id, "error", err)
		return err
	}

	svc.audit.Record(ctx, actor, models.ActionUpdate, "doctors", id,
		fmt.Sprintf("doctor %q updated", name))
	return nil
}

func (svc *DoctorService) Delete(ctx context.Context, actor *uuid.UUID, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete doctor", "doctor_id", id, "error", err)
		return err
	}

	svc.audit.Record(ctx, actor, models.ActionDelete, "doctors", id, "doctor deleted")
	return nil
}
