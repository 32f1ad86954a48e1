package identity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediconnect/mediconnect/internal/platform/api"
	"github.com/mediconnect/mediconnect/internal/platform/auth"
)

type mockRepo struct {
	mu      sync.Mutex
	byEmail map[string]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{byEmail: make(map[string]*User)}
}

func (m *mockRepo) CreateWithPatient(_ context.Context, u *User, _ string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byEmail[u.Email]; taken {
		return uuid.Nil, ErrEmailTaken
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	m.byEmail[u.Email] = u
	return uuid.New(), nil
}

func (m *mockRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func newTestService() (*Service, *mockRepo, *auth.TokenIssuer) {
	repo := newMockRepo()
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	return NewService(repo, tokens), repo, tokens
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc, repo, tokens := newTestService()

	sess, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Jane Roe",
		Email:    "Jane@Example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.User.Role != RolePatient {
		t.Errorf("expected patient role, got %q", sess.User.Role)
	}
	if sess.User.Email != "jane@example.com" {
		t.Errorf("email should be lowercased, got %q", sess.User.Email)
	}

	claims, err := tokens.Verify(sess.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != sess.User.ID.String() {
		t.Errorf("token subject %q does not match user id %q", claims.Subject, sess.User.ID)
	}
	if claims.Role != RolePatient {
		t.Errorf("expected patient role claim, got %q", claims.Role)
	}

	stored := repo.byEmail["jane@example.com"]
	if stored.PasswordHash == "hunter2hunter2" {
		t.Fatal("password must not be stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	req := RegisterRequest{FullName: "Jane Roe", Email: "jane@example.com", Password: "hunter2hunter2"}

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	apiErr := api.AsError(err)
	if apiErr == nil || apiErr.Kind != api.KindConflict {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if apiErr.Message != "Email already registered" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()
	reg := RegisterRequest{FullName: "Jane Roe", Email: "jane@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Register(context.Background(), reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Email matching is case-insensitive.
	sess, err := svc.Login(context.Background(), LoginRequest{Email: "JANE@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}

	// Wrong password and unknown email read the same to the caller.
	for _, req := range []LoginRequest{
		{Email: "jane@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "hunter2hunter2"},
	} {
		_, err := svc.Login(context.Background(), req)
		apiErr := api.AsError(err)
		if apiErr == nil || apiErr.Kind != api.KindUnauthorized {
			t.Fatalf("expected Unauthorized for %q, got %v", req.Email, err)
		}
		if apiErr.Message != "Invalid email or password" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
	}
}
