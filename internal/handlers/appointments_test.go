package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
)

func TestAppointmentListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.AppointmentRow{
		{
			AppointmentID: 11,
			VisitDate:     "2026-09-01",
			VisitTime:     "14:30",
			DoctorName:    "Dr. Grey",
			PatientName:   "John Smith",
		},
	}, nil)

	handler := NewAppointmentListHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/menu3", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dr. Grey")
	assert.Contains(t, rr.Body.String(), "John Smith")
}

func TestAppointmentInsertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentManager(ctrl)

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			form: url.Values{
				"date": {"2026-09-01"}, "time": {"14:30"},
				"doctorID": {"2"}, "patientID": {"7"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), gomock.Any(), "2026-09-01", "14:30", int64(2), int64(7)).
					Return(int64(11), nil)
			},
			expectedCode: http.StatusSeeOther,
		},
		{
			name: "dangling reference",
			form: url.Values{
				"date": {"2026-09-01"}, "time": {"14:30"},
				"doctorID": {"99"}, "patientID": {"7"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), gomock.Any(), "2026-09-01", "14:30", int64(99), int64(7)).
					Return(int64(0), repositories.ErrReferentialConflict)
			},
			expectedCode: http.StatusConflict,
			expectedBody: "doctor or patient does not exist",
		},
		{
			name: "bad doctor id",
			form: url.Values{
				"date": {"2026-09-01"}, "time": {"14:30"},
				"doctorID": {"two"}, "patientID": {"7"},
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := postForm(t, NewAppointmentInsertHandler(mockSvc), "/menu3/insert", tt.form)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestAppointmentUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentManager(ctrl)

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			form: url.Values{
				"appointmentID": {"11"}, "date": {"2026-09-02"}, "time": {"09:00"},
				"doctorID": {"2"}, "patientID": {"7"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(11), "2026-09-02", "09:00", int64(2), int64(7)).
					Return(nil)
			},
			expectedCode: http.StatusSeeOther,
		},
		{
			name: "not found",
			form: url.Values{
				"appointmentID": {"99"}, "date": {"2026-09-02"}, "time": {"09:00"},
				"doctorID": {"2"}, "patientID": {"7"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(99), "2026-09-02", "09:00", int64(2), int64(7)).
					Return(repositories.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "dangling reference",
			form: url.Values{
				"appointmentID": {"11"}, "date": {"2026-09-02"}, "time": {"09:00"},
				"doctorID": {"99"}, "patientID": {"7"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(11), "2026-09-02", "09:00", int64(99), int64(7)).
					Return(repositories.ErrReferentialConflict)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := postForm(t, NewAppointmentUpdateHandler(mockSvc), "/menu3/update", tt.form)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAppointmentDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentManager(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), gomock.Any(), int64(11)).
		Return(nil)

	rr := postForm(t, NewAppointmentDeleteHandler(mockSvc), "/menu3/delete",
		url.Values{"appointmentID": {"11"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/menu3", rr.Header().Get("Location"))
}
