// Package job runs LightBnB background work on asynq.
//
// Request handlers enqueue tasks through JobService.Client; the worker
// server started alongside the HTTP server executes them against Redis.
package job

import (
	"fmt"

	"github.com/FarzanehSa/LightBnB/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer is what the email tasks need from the email client.
type Mailer interface {
	SendWelcomeEmail(to, name string) error
	SendPropertyListedEmail(to, ownerName, title, city, costPerNight string) error
}

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config, mailer Mailer) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
		Logger:   asynqLogger{logger},
		LogLevel: asynq.WarnLevel,
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: mailer,
		logger: logger,
	}
}

// Mux routes each task type to its handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskPropertyListed, j.handlePropertyListedTask)
	return mux
}

// Start launches the workers in the background; it does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.Mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger sends asynq's own logs through zerolog.
type asynqLogger struct {
	log *zerolog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug().Str("component", "asynq").Msg(sprint(args)) }
func (l asynqLogger) Info(args ...any)  { l.log.Info().Str("component", "asynq").Msg(sprint(args)) }
func (l asynqLogger) Warn(args ...any)  { l.log.Warn().Str("component", "asynq").Msg(sprint(args)) }
func (l asynqLogger) Error(args ...any) { l.log.Error().Str("component", "asynq").Msg(sprint(args)) }
func (l asynqLogger) Fatal(args ...any) { l.log.Fatal().Str("component", "asynq").Msg(sprint(args)) }

func sprint(args []any) string {
	return fmt.Sprint(args...)
}
