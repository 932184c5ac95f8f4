package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. Asynq routes on these strings.
const (
	TaskWelcome     = "email:welcome"
	TaskSeedPokedex = "seed:pokedex"
)

// WelcomeEmailPayload is the JSON payload of TaskWelcome.
type WelcomeEmailPayload struct {
	To       string `json:"to"`
	FullName string `json:"full_name"`
}

// NewWelcomeEmailTask builds a welcome email task: up to 3 retries on the
// default queue, killed after 30 seconds.
func NewWelcomeEmailTask(to, fullName string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		FullName: fullName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewPokedexSeedTask builds a pokedex seed task. Only one can be pending
// at a time; the seed wipes the collection so overlapping runs would race.
func NewPokedexSeedTask() *asynq.Task {
	return asynq.NewTask(
		TaskSeedPokedex,
		nil,
		asynq.MaxRetry(1),
		asynq.Queue("low"),
		asynq.Timeout(2*time.Minute),
		asynq.Unique(5*time.Minute),
	)
}

// DecodeWelcomeEmail parses a TaskWelcome payload.
func DecodeWelcomeEmail(t *asynq.Task) (WelcomeEmailPayload, error) {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}
	return p, nil
}
