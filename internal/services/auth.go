package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

// dummyHash is compared against when a username does not exist, so a
// failed login costs one bcrypt verification on both paths.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, role string) (uuid.UUID, error)
}

// SessionStore defines the session lifecycle used by the authenticator.
type SessionStore interface {
	Create(userID uuid.UUID, username, role string) string
	Resolve(token string) (*models.Session, bool)
	Destroy(token string)
}

// Recorder appends audit records. Implementations never fail the caller.
type Recorder interface {
	Record(ctx context.Context, actor *uuid.UUID, action models.Action, tableName string, subjectID int64, detail string)
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	audit    Recorder
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, audit Recorder) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		audit:    audit,
	}
}

// Register creates a new user. Role defaults to staff when unspecified or
// unrecognized. A taken username fails with ErrUsernameTaken.
func (svc *AuthService) Register(ctx context.Context, username, password, role string) (uuid.UUID, error) {
	if role != models.RoleAdmin {
		role = models.RoleStaff
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, string(hash), role)
	if errors.Is(err, repositories.ErrDuplicateUsername) {
		// Signup raced another signup for the same name.
		return uuid.Nil, ErrUsernameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login verifies the credentials and, on success, creates a session and
// records the login. An unknown username and a wrong password are
// indistinguishable: both return ErrInvalidCredentials. Failures leave no
// trace: no session, no audit record.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := svc.sessions.Create(user.UserID, user.Username, user.Role)
	svc.audit.Record(ctx, &user.UserID, models.ActionLogin, "users", 0,
		fmt.Sprintf("user %s logged in", user.Username))

	return token, nil
}

// Logout destroys the session for a token and records the logout. An
// unknown or already-expired token is a no-op.
func (svc *AuthService) Logout(ctx context.Context, token string) {
	sess, ok := svc.sessions.Resolve(token)
	if !ok {
		return
	}

	svc.sessions.Destroy(token)
	svc.audit.Record(ctx, &sess.UserID, models.ActionLogout, "users", 0,
		fmt.Sprintf("user %s logged out", sess.Username))
}
