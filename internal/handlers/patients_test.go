package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
)

func TestPatientListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPatientManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Patient{
		{PatientID: 1, Name: "John Smith", Contact: "555-0101"},
	}, nil)

	handler := NewPatientListHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/menu1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "John Smith")
}

func TestPatientListHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPatientManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))

	handler := NewPatientListHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/menu1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPatientInsertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPatientManager(ctrl)
	mockSvc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "John Smith", "555-0101").
		Return(int64(7), nil)

	rr := postForm(t, NewPatientInsertHandler(mockSvc), "/menu1/insert",
		url.Values{"name": {"John Smith"}, "contact": {"555-0101"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/menu1", rr.Header().Get("Location"))
}

func TestPatientUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPatientManager(ctrl)

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			form: url.Values{"patientID": {"7"}, "name": {"John Smith"}, "contact": {"555-0199"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(7), "John Smith", "555-0199").
					Return(nil)
			},
			expectedCode: http.StatusSeeOther,
		},
		{
			name: "not found",
			form: url.Values{"patientID": {"99"}, "name": {"John Smith"}, "contact": {"555-0199"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(99), "John Smith", "555-0199").
					Return(repositories.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			form:         url.Values{"patientID": {"seven"}, "name": {"John Smith"}},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := postForm(t, NewPatientUpdateHandler(mockSvc), "/menu1/update", tt.form)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestPatientDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPatientManager(ctrl)

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			form: url.Values{"patientID": {"7"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), gomock.Any(), int64(7)).
					Return(nil)
			},
			expectedCode: http.StatusSeeOther,
		},
		{
			name: "still referenced",
			form: url.Values{"patientID": {"7"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), gomock.Any(), int64(7)).
					Return(repositories.ErrReferentialConflict)
			},
			expectedCode: http.StatusConflict,
			expectedBody: "patient has appointments and cannot be deleted",
		},
		{
			name: "not found",
			form: url.Values{"patientID": {"99"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), gomock.Any(), int64(99)).
					Return(repositories.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := postForm(t, NewPatientDeleteHandler(mockSvc), "/menu1/delete", tt.form)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}
