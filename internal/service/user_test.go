package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/FarzanehSa/LightBnB/internal/lib/job"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(users UserStore, queue TaskEnqueuer) *UserService {
	log := zerolog.Nop()
	s := NewUserService(users, newTestAuth(time.Now()), queue, &log)
	s.hashCost = bcrypt.MinCost
	return s
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr.Status
}

func TestRegister_HashesAndQueuesWelcome(t *testing.T) {
	users := newFakeUsers()
	queue := &fakeQueue{}
	s := newTestUserService(users, queue)

	session, err := s.Register(context.Background(), &model.RegisterUserPayload{
		Name:     "Eva Stanley",
		Email:    "Eva@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if session.Token == "" || session.User.ID != 1 {
		t.Fatalf("unexpected session %+v", session)
	}
	if session.User.Password == "password123" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(session.User.Password), []byte("password123")); err != nil {
		t.Errorf("stored hash does not match: %v", err)
	}

	if len(queue.tasks) != 1 || queue.tasks[0].Type() != job.TaskWelcome {
		t.Fatalf("expected welcome task, got %v", queue.tasks)
	}
	var p job.WelcomeEmailPayload
	_ = json.Unmarshal(queue.tasks[0].Payload(), &p)
	if p.To != "eva@example.com" || p.Name != "Eva Stanley" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestRegister_QueueFailureDoesNotFail(t *testing.T) {
	s := newTestUserService(newFakeUsers(), &fakeQueue{err: errors.New("redis down")})

	if _, err := s.Register(context.Background(), &model.RegisterUserPayload{
		Name: "A", Email: "a@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register should succeed without the queue: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	users.err = &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"}
	s := newTestUserService(users, nil)

	_, err := s.Register(context.Background(), &model.RegisterUserPayload{
		Name: "A", Email: "a@example.com", Password: "password123",
	})
	if got := statusOf(t, err); got != http.StatusConflict {
		t.Errorf("status = %d, want 409", got)
	}
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users := newFakeUsers(&model.User{ID: 5, Name: "Ann", Email: "ann@example.com", Password: string(hash)})
	s := newTestUserService(users, nil)
	ctx := context.Background()

	session, err := s.Login(ctx, &model.LoginPayload{Email: "ANN@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if userID, err := s.auth.ParseToken(session.Token); err != nil || userID != 5 {
		t.Errorf("token does not identify user 5: %d, %v", userID, err)
	}

	_, err = s.Login(ctx, &model.LoginPayload{Email: "ann@example.com", Password: "wrong-password"})
	if got := statusOf(t, err); got != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d", got)
	}

	_, err = s.Login(ctx, &model.LoginPayload{Email: "nobody@example.com", Password: "password123"})
	if got := statusOf(t, err); got != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d", got)
	}
}

func TestMe(t *testing.T) {
	s := newTestUserService(newFakeUsers(&model.User{ID: 2, Name: "Bo", Email: "bo@example.com"}), nil)

	user, err := s.Me(context.Background(), 2)
	if err != nil || user.Name != "Bo" {
		t.Fatalf("Me = %+v, %v", user, err)
	}

	_, err = s.Me(context.Background(), 99)
	if got := statusOf(t, err); got != http.StatusNotFound {
		t.Errorf("status = %d, want 404", got)
	}
}
