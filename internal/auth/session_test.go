package auth

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
	"github.com/rogerio-castellano/garment-inventory/internal/repo"
)

func newTestService() (*Service, *repo.InMemoryUserRepository, *repo.InMemoryActivityRepository) {
	users := repo.NewInMemoryUserRepository()
	activity := repo.NewInMemoryActivityRepository()
	activity.SetUserRepository(users)
	return NewService(users, activity), users, activity
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, activity := newTestService()

	user, err := svc.Register("alice", "password1", models.RoleStaff, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected an assigned user ID")
	}
	if user.PasswordHash == "password1" {
		t.Error("password must not be stored in the clear")
	}

	session, err := svc.Login("alice", "password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Role != models.RoleStaff {
		t.Errorf("expected role staff, got %q", session.Role)
	}

	if _, ok := svc.Current(); !ok {
		t.Error("expected an active session after login")
	}

	entries, _ := activity.Recent(10)
	if len(entries) != 2 {
		t.Fatalf("expected 2 activity entries, got %d", len(entries))
	}
	if entries[0].Activity != "User logged in" {
		t.Errorf("expected the newest entry to be the login, got %q", entries[0].Activity)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Register("alice", "password1", models.RoleStaff, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register("alice", "different1", models.RoleAdmin, "")
	if !errors.Is(err, repo.ErrDuplicatedValueUnique) {
		t.Errorf("expected ErrDuplicatedValueUnique, got %v", err)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register("alice", "password1", "owner", "")
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _ := newTestService()

	svc.Register("alice", "password1", models.RoleStaff, "")
	before, _ := users.GetByUsername("alice")

	_, err := svc.Login("alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	after, _ := users.GetByUsername("alice")
	if !after.LastLogin.Equal(before.LastLogin) {
		t.Error("failed login must not touch last_login")
	}
	if _, ok := svc.Current(); ok {
		t.Error("failed login must not open a session")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login("ghost", "password1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _, _ := newTestService()

	svc.Register("alice", "password1", models.RoleStaff, "")
	svc.Login("alice", "password1")
	svc.Logout()

	if _, ok := svc.Current(); ok {
		t.Error("expected no session after logout")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(models.User{ID: 7, Username: "alice", Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims["username"] != "alice" || claims["role"] != models.RoleStaff {
		t.Errorf("unexpected claims: %v", claims)
	}
	if int(claims["sub"].(float64)) != 7 {
		t.Errorf("expected sub 7, got %v", claims["sub"])
	}
}

func TestTokenClaimsRejectsGarbage(t *testing.T) {
	if _, _, err := TokenClaims(""); err == nil {
		t.Error("expected an error for a missing header")
	}
	if _, _, err := TokenClaims("Bearer not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
