package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
	"clinicrecords/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		role         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantRole     string
		wantErr      error
	}{
		{
			name:     "successful registration defaults to staff",
			username: "alice",
			role:     "",
			wantRole: models.RoleStaff,
		},
		{
			name:     "admin role preserved",
			username: "root",
			role:     models.RoleAdmin,
			wantRole: models.RoleAdmin,
		},
		{
			name:     "unrecognized role coerced to staff",
			username: "bob",
			role:     "superuser",
			wantRole: models.RoleStaff,
		},
		{
			name:         "username already exists",
			username:     "carol",
			existingUser: &models.UserDB{UserID: uuid.New(), Username: "carol"},
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "dave",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "duplicate surfaced by unique constraint",
			username:  "eve",
			wantRole:  models.RoleStaff,
			writerErr: repositories.ErrDuplicateUsername,
			wantErr:   services.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSessions := services.NewMockSessionStore(ctrl)
			mockAudit := services.NewMockRecorder(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), tt.wantRole).
					Return(uuid.New(), tt.writerErr)
			}

			_, err := svc.Register(context.Background(), tt.username, "pass123", tt.role)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_StoresHashNotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", gomock.Any(), models.RoleStaff).
		DoAndReturn(func(_ context.Context, _, hash, _ string) (uuid.UUID, error) {
			assert.NotEqual(t, "pw123", hash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw123")))
			return uuid.New(), nil
		})

	_, err := svc.Register(context.Background(), "alice", "pw123", "")
	assert.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	assert.NoError(t, err)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:       userID,
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
	}

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	mockSessions.EXPECT().Create(userID, "alice", models.RoleStaff).Return("token-1")
	mockAudit.EXPECT().
		Record(gomock.Any(), &userID, models.ActionLogin, "users", int64(0), gomock.Any()).
		Times(1)

	token, err := svc.Login(context.Background(), "alice", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
	}

	// Wrong password for a real user. No session, no audit record: the
	// mocks would flag any unexpected call.
	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	_, errWrongPassword := svc.Login(context.Background(), "alice", "nope")

	// Unknown username.
	mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, errUnknownUser := svc.Login(context.Background(), "ghost", "nope")

	assert.ErrorIs(t, errWrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, services.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword, errUnknownUser)
}

func TestAuthService_Login_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db down"))

	_, err := svc.Login(context.Background(), "alice", "pw123")
	assert.EqualError(t, err, "db down")
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

	userID := uuid.New()
	sess := &models.Session{Token: "token-1", UserID: userID, Username: "alice", Role: models.RoleStaff}

	mockSessions.EXPECT().Resolve("token-1").Return(sess, true)
	mockSessions.EXPECT().Destroy("token-1")
	mockAudit.EXPECT().
		Record(gomock.Any(), &userID, models.ActionLogout, "users", int64(0), gomock.Any()).
		Times(1)

	svc.Logout(context.Background(), "token-1")
}

func TestAuthService_Logout_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockAudit := services.NewMockRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockAudit)

	mockSessions.EXPECT().Resolve("stale").Return(nil, false)

	// No destroy, no audit record.
	svc.Logout(context.Background(), "stale")
}
