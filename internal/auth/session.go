package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
	"github.com/rogerio-castellano/garment-inventory/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for an unknown username or a
	// wrong password. Failed logins leave last_login untouched.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidRole is returned when registering with a role outside
	// admin/staff.
	ErrInvalidRole = errors.New("role must be admin or staff")
)

// Session is the in-memory record of the authenticated user and role.
type Session struct {
	User models.User
	Role string
}

// Service moves the process between Anonymous and Authenticated. It
// replaces the shared current_user/current_role globals of the legacy
// system with one explicit object.
type Service struct {
	mu       sync.Mutex
	users    repo.UserRepository
	activity repo.ActivityRepository
	current  *Session
}

func NewService(users repo.UserRepository, activity repo.ActivityRepository) *Service {
	return &Service{users: users, activity: activity}
}

// Login authenticates by exact username match and password comparison.
// On success it marks the session active, touches last_login and records
// the login in the activity log.
func (s *Service) Login(username, password string) (Session, error) {
	user, err := s.users.GetByUsername(username)
	if errors.Is(err, repo.ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(user.ID); err != nil {
		return Session{}, err
	}
	if err := s.activity.Record(user.ID, "User logged in"); err != nil {
		return Session{}, err
	}

	session := Session{User: user, Role: user.Role}
	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()
	return session, nil
}

// Register creates a user account. The username must be unique; a clash
// surfaces as repo.ErrDuplicatedValueUnique with the existing row left
// unchanged.
func (s *Service) Register(username, password, role, email string) (models.User, error) {
	if role != models.RoleAdmin && role != models.RoleStaff {
		return models.User{}, ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
		Email:        email,
	})
	if err != nil {
		return models.User{}, err
	}

	if err := s.activity.Record(user.ID, fmt.Sprintf("User %s registered as %s", username, role)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout returns the process to Anonymous. No persistence side effect.
func (s *Service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current reports the active session, if any.
func (s *Service) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// CanManage reports whether the role may mutate garments, suppliers,
// users and settings. Staff may only view and record transactions.
func CanManage(role string) bool {
	return role == models.RoleAdmin
}
