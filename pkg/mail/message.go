package mail

import (
	"fmt"
	"schedify/pkg/models"
)

const reminderBody = `
<p>Dear User,</p>
<p>This is a reminder for your upcoming schedule:</p>

<ul>
  <li><strong>Title:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Category:</strong> %s</li>
  <li><strong>Priority:</strong> %s</li>
</ul>

<p>Please ensure you are prepared accordingly. If there are any changes, kindly update your schedule through the system.</p>
<p>Best regards,<br>Your Schedify Team</p>
`

const manualBody = `
<p>Your manual reminder for <strong>%s</strong></p>
<p>Scheduled for: %s at %s</p>
<p>Reminder set for: %s at %s</p>
<p>Category: %s</p>
<p>Priority: %s</p>
`

// ReminderMessage renders the scheduled-dispatch email for one due
// schedule.
func ReminderMessage(to string, schedule *models.Schedule) *Message {
	return &Message{
		To:      to,
		Subject: fmt.Sprintf("Reminder: %s", schedule.Title),
		HTML: fmt.Sprintf(reminderBody,
			schedule.Title,
			schedule.DisplayDate(),
			schedule.DisplayScheduleTime(),
			schedule.DisplayCategory(),
			schedule.DisplayPriority(),
		),
	}
}

// ManualMessage renders the send-now email. The schedule here is built
// from request fields and has no backing document.
func ManualMessage(to string, schedule *models.Schedule) *Message {
	return &Message{
		To:      to,
		Subject: fmt.Sprintf("Reminder: %s", schedule.Title),
		HTML: fmt.Sprintf(manualBody,
			schedule.Title,
			schedule.DisplayDate(),
			schedule.DisplayScheduleTime(),
			schedule.DisplayReminderDate(),
			schedule.DisplayReminderTime(),
			schedule.DisplayCategory(),
			schedule.DisplayPriority(),
		),
	}
}
