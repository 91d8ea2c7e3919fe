package service

import (
	"context"
	"errors"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/FarzanehSa/LightBnB/internal/lib/job"
	"github.com/FarzanehSa/LightBnB/internal/logger"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, user model.NewUser) (*model.User, error)
}

var errInvalidCredentials = errs.NewUnauthorizedError("Invalid email or password", true)

type UserService struct {
	users    UserStore
	auth     *AuthService
	jobs     TaskEnqueuer
	hashCost int
	log      *zerolog.Logger
}

func NewUserService(users UserStore, auth *AuthService, jobs TaskEnqueuer, log *zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		auth:     auth,
		jobs:     jobs,
		hashCost: bcrypt.DefaultCost,
		log:      log,
	}
}

// Register creates the account, queues the welcome email and signs the user in.
func (s *UserService) Register(ctx context.Context, p *model.RegisterUserPayload) (*model.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.hashCost)
	if err != nil {
		return nil, errs.NewInternalServerError()
	}

	user, err := s.users.AddUser(ctx, model.NewUser{
		Name:     p.Name,
		Email:    p.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if task, err := job.NewWelcomeEmailTask(user.Email, user.Name); err == nil {
		enqueue(ctx, s.jobs, s.log, task)
	}

	return s.session(user)
}

// Login checks the password against the stored hash. Unknown emails and
// wrong passwords get the same answer.
func (s *UserService) Login(ctx context.Context, p *model.LoginPayload) (*model.Session, error) {
	user, err := s.users.GetUserWithEmail(ctx, p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errInvalidCredentials
		}
		return nil, sqlerr.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.Password)); err != nil {
		logger.FromContext(ctx, s.log).Info().Int64("user_id", user.ID).Msg("login rejected")
		return nil, errInvalidCredentials
	}

	return s.session(user)
}

// Me returns the signed-in user.
func (s *UserService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetUserWithID(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

func (s *UserService) session(user *model.User) (*model.Session, error) {
	token, expiresAt, err := s.auth.IssueToken(user.ID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to issue session token")
		return nil, errs.NewInternalServerError()
	}
	return &model.Session{User: user, Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
