package trigger

import (
	"fmt"
	"github.com/robfig/cron/v3"
	"schedify/pkg/config"
)

// Cron fires cycles from an in-process cron schedule, normally every
// minute.
type Cron struct {
	spec string
	c    *cron.Cron
}

func NewCron(cfg *config.Config) *Cron {
	return &Cron{
		spec: cfg.Dispatcher.Schedule,
	}
}

func (t *Cron) Run(fire func()) error {
	t.c = cron.New()

	if _, err := t.c.AddFunc(t.spec, fire); err != nil {
		return fmt.Errorf("invalid cron spec %q, %s", t.spec, err)
	}

	t.c.Run()
	return nil
}

func (t *Cron) Close() error {
	if t.c != nil {
		t.c.Stop()
	}
	return nil
}
