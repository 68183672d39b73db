package dispatch

import (
	"context"
	"schedify/pkg/log"
	"schedify/pkg/mail"
	"schedify/pkg/models"
	"sync"
	"time"
)

// Store is the slice of the datastore the dispatcher touches: read due
// schedules, read users, flip completion flags.
type Store interface {
	DueSchedules(ctx context.Context, dateKey, timeKey string) ([]*models.Schedule, error)
	User(ctx context.Context, id string) (*models.User, error)
	MarkReminded(ctx context.Context, id string) error
}

// Outcome is what one cycle reports. Failed covers transport errors;
// Skipped covers dangling user references. A schedule whose send
// succeeded but whose completion write failed still counts as sent.
type Outcome struct {
	Due     int
	Sent    int
	Skipped int
	Failed  int
}

type Dispatcher struct {
	store       Store
	sender      mail.Sender
	offsetHours int
	now         func() time.Time
}

func NewDispatcher(store Store, sender mail.Sender, offsetHours int) *Dispatcher {
	return &Dispatcher{
		store:       store,
		sender:      sender,
		offsetHours: offsetHours,
		now:         time.Now,
	}
}

// RunCycle executes one dispatch cycle: resolve the due key, query, fan
// out one pipeline per schedule, wait for all of them to settle. The
// cycle never fails as a whole; a query error just means zero due
// items. There is no lock against a concurrent cycle — correctness
// against double-send rests on the completion flag being written before
// the next minute's query runs.
func (d *Dispatcher) RunCycle(ctx context.Context) Outcome {
	logger := log.Logger()

	dateKey, timeKey := DueKey(d.now(), d.offsetHours)
	logger.Debugf(nil, "dispatch cycle for %s %s", dateKey, timeKey)

	schedules, err := d.store.DueSchedules(ctx, dateKey, timeKey)
	if err != nil {
		logger.Errorf(nil, "error querying due schedules, %s", err)
		return Outcome{}
	}

	if len(schedules) == 0 {
		return Outcome{}
	}

	logger.Infof(nil, "%d reminders due at %s %s", len(schedules), dateKey, timeKey)

	outcome := Outcome{Due: len(schedules)}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, schedule := range schedules {
		wg.Add(1)
		go func(schedule *models.Schedule) {
			defer wg.Done()

			result := d.dispatch(ctx, schedule)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case dispatchSent:
				outcome.Sent++
			case dispatchSkipped:
				outcome.Skipped++
			case dispatchFailed:
				outcome.Failed++
			}
		}(schedule)
	}
	wg.Wait()

	logger.Infof(nil, "dispatch cycle complete: %d due, %d sent, %d skipped, %d failed",
		outcome.Due, outcome.Sent, outcome.Skipped, outcome.Failed)

	return outcome
}

type dispatchResult int

const (
	dispatchSent dispatchResult = iota
	dispatchSkipped
	dispatchFailed
)

// dispatch runs one schedule's pipeline: resolve the owner, send, mark
// complete. Nothing escapes the item boundary; a panic here must not
// take down sibling pipelines.
func (d *Dispatcher) dispatch(ctx context.Context, schedule *models.Schedule) (result dispatchResult) {
	logger := log.Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(nil, "panic dispatching %s, %v", schedule.ID, r)
			result = dispatchFailed
		}
	}()

	user, err := d.store.User(ctx, schedule.UserID)
	if err != nil {
		logger.Warningf(nil, "user %s not found for schedule %s, %s", schedule.UserID, schedule.ID, err)
		return dispatchSkipped
	}

	if err = d.sender.Send(mail.ReminderMessage(user.Email, schedule)); err != nil {
		logger.Errorf(nil, "error sending reminder for %s, %s", schedule.ID, err)
		return dispatchFailed
	}

	if err = d.store.MarkReminded(ctx, schedule.ID); err != nil {
		// Sent but not marked: the reminder went out, so count it sent.
		// A re-send can only happen if the same due key ever matches
		// again.
		logger.Errorf(nil, "error marking %s reminded, %s", schedule.ID, err)
		return dispatchSent
	}

	logger.Infof(nil, "sent reminder for %s to %s", schedule.ID, user.Email)
	return dispatchSent
}
