package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type fakeMailer struct {
	welcome []string
	listed  []string
	err     error
}

func (f *fakeMailer) SendWelcomeEmail(to, name string) error {
	f.welcome = append(f.welcome, to+"|"+name)
	return f.err
}

func (f *fakeMailer) SendPropertyListedEmail(to, ownerName, title, city, cost string) error {
	f.listed = append(f.listed, to+"|"+ownerName+"|"+title+"|"+city+"|"+cost)
	return f.err
}

func newTestService(m Mailer) *JobService {
	log := zerolog.Nop()
	return &JobService{mailer: m, logger: &log}
}

func TestWelcomeTask_RoundTrip(t *testing.T) {
	task, err := NewWelcomeEmailTask("guest@example.com", "Eva")
	if err != nil {
		t.Fatalf("NewWelcomeEmailTask: %v", err)
	}
	if task.Type() != TaskWelcome {
		t.Errorf("type = %q", task.Type())
	}

	m := &fakeMailer{}
	if err := newTestService(m).Mux().ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	if len(m.welcome) != 1 || m.welcome[0] != "guest@example.com|Eva" {
		t.Errorf("unexpected sends %v", m.welcome)
	}
}

func TestPropertyListedTask_FormatsCost(t *testing.T) {
	task, err := NewPropertyListedTask(PropertyListedPayload{
		To:           "owner@example.com",
		OwnerName:    "Ann",
		PropertyID:   4,
		Title:        "Cozy loft",
		City:         "Calgary",
		CostPerNight: 12050,
	})
	if err != nil {
		t.Fatalf("NewPropertyListedTask: %v", err)
	}

	m := &fakeMailer{}
	if err := newTestService(m).Mux().ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	if len(m.listed) != 1 || m.listed[0] != "owner@example.com|Ann|Cozy loft|Calgary|$120.50" {
		t.Errorf("unexpected sends %v", m.listed)
	}
}

func TestHandler_MailerErrorIsReturned(t *testing.T) {
	task, _ := NewWelcomeEmailTask("guest@example.com", "Eva")
	sendErr := errors.New("provider down")

	err := newTestService(&fakeMailer{err: sendErr}).Mux().ProcessTask(context.Background(), task)
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected mailer error, got %v", err)
	}
}

func TestHandler_BadPayloadSkipsRetry(t *testing.T) {
	task := asynq.NewTask(TaskWelcome, []byte("{not json"))

	err := newTestService(&fakeMailer{}).Mux().ProcessTask(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestPayloadJSON(t *testing.T) {
	task, _ := NewWelcomeEmailTask("a@b.co", "A")

	var p map[string]string
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if p["to"] != "a@b.co" || p["name"] != "A" {
		t.Errorf("unexpected payload %v", p)
	}
}

func TestFormatCents(t *testing.T) {
	tests := map[int64]string{
		0:      "$0.00",
		5:      "$0.05",
		9300:   "$93.00",
		123456: "$1234.56",
		-250:   "-$2.50",
	}
	for in, want := range tests {
		if got := FormatCents(in); got != want {
			t.Errorf("FormatCents(%d) = %q, want %q", in, got, want)
		}
	}
}
