package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome        = "email:welcome"
	TaskPropertyListed = "email:property_listed"
)

type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewWelcomeEmailTask is enqueued after a guest registers.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Name: name})
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

// PropertyListedPayload carries CostPerNight in cents, as stored.
type PropertyListedPayload struct {
	To           string `json:"to"`
	OwnerName    string `json:"owner_name"`
	PropertyID   int64  `json:"property_id"`
	Title        string `json:"title"`
	City         string `json:"city"`
	CostPerNight int64  `json:"cost_per_night"`
}

// NewPropertyListedTask is enqueued after an owner adds a property.
// The confirmation is not urgent, so it goes to the low queue.
func NewPropertyListedTask(p PropertyListedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPropertyListed,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}

// FormatCents renders a cents amount as dollars, e.g. 9350 -> "$93.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
