package mail

import (
	"schedify/pkg/models"
	"strings"
	"testing"
)

func TestReminderMessage(t *testing.T) {
	schedule := &models.Schedule{
		Title:        "Project deadline",
		Category:     models.CategoryDeadline,
		Priority:     models.PriorityHigh,
		Date:         "2025-04-01",
		ScheduleTime: "17:00",
	}

	m := ReminderMessage("user@example.com", schedule)

	if m.To != "user@example.com" {
		t.Errorf("To = %q", m.To)
	}
	if m.Subject != "Reminder: Project deadline" {
		t.Errorf("Subject = %q", m.Subject)
	}
	for _, want := range []string{"Project deadline", "2025-04-01", "17:00", "deadline", "high"} {
		if !strings.Contains(m.HTML, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestReminderMessageSubstitutesMissingFields(t *testing.T) {
	m := ReminderMessage("user@example.com", &models.Schedule{Title: "T"})

	if got := strings.Count(m.HTML, "N/A"); got != 4 {
		t.Errorf("body has %d N/A substitutions, want 4:\n%s", got, m.HTML)
	}
}

func TestManualMessage(t *testing.T) {
	m := ManualMessage("a@b.com", &models.Schedule{
		Title:        "Standup",
		ReminderDate: "2025-04-01",
		ReminderTime: "08:55",
	})

	if m.Subject != "Reminder: Standup" {
		t.Errorf("Subject = %q", m.Subject)
	}
	if !strings.Contains(m.HTML, "2025-04-01") || !strings.Contains(m.HTML, "08:55") {
		t.Errorf("body missing reminder fields:\n%s", m.HTML)
	}
	if !strings.Contains(m.HTML, "N/A") {
		t.Error("body missing fallback for absent event fields")
	}
}
