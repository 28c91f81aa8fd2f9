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

func TestDoctorListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Doctor{
		{DoctorID: 2, Name: "Dr. Grey", Speciality: "Cardiology"},
	}, nil)

	handler := NewDoctorListHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/menu2", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dr. Grey")
	assert.Contains(t, rr.Body.String(), "Cardiology")
}

func TestDoctorInsertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorManager(ctrl)
	mockSvc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "Dr. Grey", "Cardiology").
		Return(int64(2), nil)

	rr := postForm(t, NewDoctorInsertHandler(mockSvc), "/menu2/insert",
		url.Values{"name": {"Dr. Grey"}, "speciality": {"Cardiology"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/menu2", rr.Header().Get("Location"))
}

func TestDoctorUpdateHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorManager(ctrl)
	mockSvc.EXPECT().
		Update(gomock.Any(), gomock.Any(), int64(99), "Dr. Grey", "Neurology").
		Return(repositories.ErrNotFound)

	rr := postForm(t, NewDoctorUpdateHandler(mockSvc), "/menu2/update",
		url.Values{"doctorID": {"99"}, "name": {"Dr. Grey"}, "speciality": {"Neurology"}})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDoctorDeleteHandler_StillReferenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorManager(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), gomock.Any(), int64(2)).
		Return(repositories.ErrReferentialConflict)

	rr := postForm(t, NewDoctorDeleteHandler(mockSvc), "/menu2/delete",
		url.Values{"doctorID": {"2"}})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "doctor has appointments and cannot be deleted")
}
