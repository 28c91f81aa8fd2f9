package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
	"clinicrecords/internal/services"
)

func TestAppointmentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAppointmentReader(ctrl)
	mockWriter := services.NewMockAppointmentWriter(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAppointmentService(mockReader, mockWriter, mockAudit)

	actor := uuid.New()
	mockWriter.EXPECT().
		Save(gomock.Any(), "2026-09-01", "14:30", int64(2), int64(7)).
		Return(int64(11), nil)
	mockAudit.EXPECT().
		Record(gomock.Any(), &actor, models.ActionCreate, "appointments", int64(11), gomock.Any()).
		Times(1)

	id, err := svc.Create(context.Background(), &actor, "2026-09-01", "14:30", 2, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestAppointmentService_Create_DanglingReferenceProducesNoAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAppointmentReader(ctrl)
	mockWriter := services.NewMockAppointmentWriter(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAppointmentService(mockReader, mockWriter, mockAudit)

	mockWriter.EXPECT().
		Save(gomock.Any(), "2026-09-01", "14:30", int64(99), int64(7)).
		Return(int64(0), repositories.ErrReferentialConflict)

	id, err := svc.Create(context.Background(), nil, "2026-09-01", "14:30", 99, 7)
	assert.ErrorIs(t, err, repositories.ErrReferentialConflict)
	assert.Zero(t, id)
}

func TestAppointmentService_Update(t *testing.T) {
	tests := []struct {
		name      string
		updateErr error
		wantAudit bool
	}{
		{name: "success", updateErr: nil, wantAudit: true},
		{name: "not found", updateErr: repositories.ErrNotFound, wantAudit: false},
		{name: "dangling reference", updateErr: repositories.ErrReferentialConflict, wantAudit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockAppointmentReader(ctrl)
			mockWriter := services.NewMockAppointmentWriter(ctrl)
			mockAudit := services.NewMockRecorder(ctrl)

			svc := services.NewAppointmentService(mockReader, mockWriter, mockAudit)

			mockWriter.EXPECT().
				Update(gomock.Any(), int64(11), "2026-09-02", "09:00", int64(2), int64(7)).
				Return(tt.updateErr)
			if tt.wantAudit {
				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), models.ActionUpdate, "appointments", int64(11), gomock.Any()).
					Times(1)
			}

			err := svc.Update(context.Background(), nil, 11, "2026-09-02", "09:00", 2, 7)
			if tt.updateErr != nil {
				assert.ErrorIs(t, err, tt.updateErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAppointmentReader(ctrl)
	mockWriter := services.NewMockAppointmentWriter(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAppointmentService(mockReader, mockWriter, mockAudit)

	mockWriter.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)
	mockAudit.EXPECT().
		Record(gomock.Any(), gomock.Any(), models.ActionDelete, "appointments", int64(11), gomock.Any()).
		Times(1)

	assert.NoError(t, svc.Delete(context.Background(), nil, 11))
}

func TestAppointmentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAppointmentReader(ctrl)
	mockWriter := services.NewMockAppointmentWriter(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAppointmentService(mockReader, mockWriter, mockAudit)

	rows := []models.AppointmentRow{{
		AppointmentID: 11,
		VisitDate:     "2026-09-01",
		VisitTime:     "14:30",
		DoctorName:    "Dr. Grey",
		PatientName:   "John Smith",
	}}
	mockReader.EXPECT().List(gomock.Any()).Return(rows, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}
