// Package service holds the LightBnB business logic between the HTTP
// handlers and the repositories: password hashing, session tokens and
// the background emails that follow sign-up and new listings.
package service

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/lib/job"
	"github.com/FarzanehSa/LightBnB/internal/logger"
	"github.com/FarzanehSa/LightBnB/internal/repository"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Services struct {
	Auth         *AuthService
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
	Job          *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s.Config.Auth)

	var jobs TaskEnqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Auth:         authService,
		Users:        NewUserService(repos.Users, authService, jobs, s.Logger),
		Properties:   NewPropertyService(repos.Properties, repos.Reviews, repos.Users, jobs, s.Logger),
		Reservations: NewReservationService(repos.Reservations),
		Job:          s.Job,
	}, nil
}

// enqueue hands a task to the queue. Email is best effort: failures are
// logged and never fail the request.
func enqueue(ctx context.Context, jobs TaskEnqueuer, fallback *zerolog.Logger, task *asynq.Task) {
	log := logger.FromContext(ctx, fallback)
	if jobs == nil {
		log.Warn().Str("task", task.Type()).Msg("job queue unavailable, task dropped")
		return
	}

	info, err := jobs.EnqueueContext(ctx, task)
	if err != nil {
		log.Error().Err(err).Str("task", task.Type()).Msg("failed to enqueue task")
		return
	}
	log.Debug().Str("task", task.Type()).Str("task_id", info.ID).Msg("task enqueued")
}
