package firestore

import (
	"cloud.google.com/go/firestore"
	"context"
	"fmt"
	"schedify/pkg/log"
	"schedify/pkg/models"
)

// DueSchedules returns every schedule whose reminder fires at exactly
// (dateKey, timeKey) and has not been sent yet. The three stored fields
// are matched with indexed equality filters; the completion flag is
// checked while decoding because documents the UI created before a
// first send have no reminded field at all, and a server-side != filter
// would exclude them.
func (fs *Firestore) DueSchedules(ctx context.Context, dateKey, timeKey string) ([]*models.Schedule, error) {
	logger := log.Logger()

	criteria := QueryCriteria{
		Path: pathSchedules,
		Filter: firestore.AndFilter{
			Filters: []firestore.EntityFilter{
				createPropertyFilter("reminderDate", Equal, dateKey),
				createPropertyFilter("reminderTime", Equal, timeKey),
				createPropertyFilter("reminder", Equal, true),
			},
		},
	}

	ds, err := queryDocuments(ctx, fs.client, criteria)
	if err != nil {
		return nil, err
	}

	schedules := make([]*models.Schedule, 0)
	for _, d := range ds {
		schedule := new(models.Schedule)
		if err = d.DataTo(schedule); err != nil {
			logger.Warningf(nil, "error decoding schedule %s, %s", d.Ref.ID, err)
			continue
		}
		if schedule.Reminded {
			continue
		}
		schedule.ID = d.Ref.ID
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// MarkReminded flips only the completion flag; the rest of the document
// belongs to the scheduling UI.
func (fs *Firestore) MarkReminded(ctx context.Context, id string) error {
	path := fmt.Sprintf("%s/%s", pathSchedules, id)
	return update(ctx, fs.client, path, map[string]any{"reminded": true})
}
