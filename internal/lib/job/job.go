// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued through an asynq.Client
//   - an asynq.Server pulls them and runs the handler registered for
//     their type
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/course-apis/internal/config"
	"github.com/deppfellow/course-apis/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
//
// Handlers are registered with Handle before Start. The welcome email
// handler is registered by NewJobService itself; domain services register
// theirs (for example the pokedex seed) while they are built.
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	mux    *asynq.ServeMux
	email  *email.Client
	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks the larger worker share:
// out of 10 workers roughly 6 critical, 3 default, 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	j := &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mux:    asynq.NewServeMux(),
		email:  email.NewClient(cfg, logger),
		logger: logger,
	}

	j.Handle(TaskWelcome, j.handleWelcomeEmailTask)

	return j
}

// Handle registers fn for taskType. It must be called before Start.
func (j *JobService) Handle(taskType string, fn func(context.Context, *asynq.Task) error) {
	j.mux.HandleFunc(taskType, fn)
}

// Enqueue pushes task into Redis.
func (j *JobService) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	info, err := j.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}

	j.logger.Debug().
		Str("type", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("task enqueued")

	return info, nil
}

// Start starts the worker server. It does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.mux); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}

	return nil
}

// Stop waits for running tasks, stops the workers and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
