package models

import (
	"fmt"
	"github.com/google/uuid"
)

const scheduleIDPrefix = "schedule"

const (
	CategoryDeadline    = "deadline"
	CategoryAppointment = "appointment"
	CategoryEvent       = "event"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// fieldFallback substitutes for optional display fields the scheduling
// UI may have left empty or absent.
const fieldFallback = "N/A"

// Schedule is one entry in the schedules collection. The event fields
// (Date, ScheduleTime) say when the thing happens; the reminder fields
// (ReminderDate, ReminderTime) say when the notification fires. Field
// names match the documents the scheduling UI writes.
type Schedule struct {
	ID           string `firestore:"id" json:"id"`
	UserID       string `firestore:"userId" json:"userId"`
	Title        string `firestore:"title" json:"title"`
	Description  string `firestore:"description" json:"description"`
	Category     string `firestore:"category" json:"category"`
	Priority     string `firestore:"priority" json:"priority"`
	Date         string `firestore:"date" json:"date"`
	ScheduleTime string `firestore:"scheduleTime" json:"scheduleTime"`
	Reminder     bool   `firestore:"reminder" json:"reminder"`
	ReminderDate string `firestore:"reminderDate" json:"reminderDate"`
	ReminderTime string `firestore:"reminderTime" json:"reminderTime"`
	Reminded     bool   `firestore:"reminded" json:"reminded"`
}

func NewSchedule(userID, title string) *Schedule {
	return &Schedule{
		ID:     fmt.Sprintf("%s-%s", scheduleIDPrefix, uuid.NewString()),
		UserID: userID,
		Title:  title,
	}
}

func (s *Schedule) DisplayDate() string {
	if s.Date == "" {
		return fieldFallback
	}
	return s.Date
}

func (s *Schedule) DisplayScheduleTime() string {
	if s.ScheduleTime == "" {
		return fieldFallback
	}
	return s.ScheduleTime
}

func (s *Schedule) DisplayReminderDate() string {
	if s.ReminderDate == "" {
		return fieldFallback
	}
	return s.ReminderDate
}

func (s *Schedule) DisplayReminderTime() string {
	if s.ReminderTime == "" {
		return fieldFallback
	}
	return s.ReminderTime
}

func (s *Schedule) DisplayCategory() string {
	if s.Category == "" {
		return fieldFallback
	}
	return s.Category
}

func (s *Schedule) DisplayPriority() string {
	if s.Priority == "" {
		return fieldFallback
	}
	return s.Priority
}
