package orchestrators

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"fittrack/internal/adapters/email"
	"fittrack/internal/application/projections"
	"fittrack/internal/domain/schedule"
)

// planRenderer is a goldmark instance for the weekly plan email body.
var planRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// SendWeeklyPlanInput carries input for the weekly plan mail.
type SendWeeklyPlanInput struct {
	To      []string
	Subject string // empty means the default subject
}

// SendWeeklyPlanDeps holds dependencies for SendWeeklyPlan.
type SendWeeklyPlanDeps struct {
	ScheduleDeps projections.GetWeekScheduleDeps
	Sender       email.Sender
}

// ExecuteSendWeeklyPlan renders the weekly schedule as a markdown digest,
// converts it to HTML, and mails it.
// PRE: input.To has at least one recipient
// POST: One email per call; an empty schedule still sends a digest saying so
func ExecuteSendWeeklyPlan(ctx context.Context, input SendWeeklyPlanInput, deps SendWeeklyPlanDeps) (email.SendResult, error) {
	if len(input.To) == 0 {
		return email.SendResult{}, fmt.Errorf("weekly plan mail needs a recipient")
	}

	week, err := projections.QueryGetWeekSchedule(ctx, deps.ScheduleDeps)
	if err != nil {
		return email.SendResult{}, err
	}

	md := renderWeekMarkdown(week)
	var html bytes.Buffer
	if err := planRenderer.Convert([]byte(md), &html); err != nil {
		return email.SendResult{}, fmt.Errorf("render weekly plan: %w", err)
	}

	subject := input.Subject
	if subject == "" {
		subject = "Your training week"
	}

	result, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      input.To,
		Subject: subject,
		HTML:    html.String(),
	})
	if err != nil {
		return email.SendResult{}, err
	}

	slog.Info("email_event", "event", "weekly_plan_sent", "to", input.To, "message_id", result.MessageID)
	return result, nil
}

// renderWeekMarkdown builds the markdown digest for one week schedule.
func renderWeekMarkdown(week schedule.WeekSchedule) string {
	var b strings.Builder
	b.WriteString("# Weekly plan\n\n")

	empty := true
	for _, bucket := range week {
		if len(bucket.Routines) == 0 {
			continue
		}
		empty = false
		b.WriteString("## " + bucket.Name + "\n\n")
		for _, r := range bucket.Routines {
			fmt.Fprintf(&b, "- **%s** (%d exercises)\n", r.Name, r.ExerciseCount)
		}
		b.WriteString("\n")
	}
	if empty {
		b.WriteString("No routines scheduled this week. Rest up or plan your next block!\n")
	}
	return b.String()
}

// StartReminderWorker starts a background goroutine that mails the weekly
// plan on every tick until stopCh is closed.
// PRE: stopCh is provided to signal shutdown
// POST: Worker runs until stopCh is closed
func StartReminderWorker(input SendWeeklyPlanInput, deps SendWeeklyPlanDeps, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				if _, err := ExecuteSendWeeklyPlan(ctx, input, deps); err != nil {
					slog.Error("weekly_plan_send_failed", "error", err.Error())
				}
				cancel()
			case <-stopCh:
				slog.Info("reminder_worker_stopped")
				return
			}
		}
	}()
}
