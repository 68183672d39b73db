package trigger

import (
	"context"
	"schedify/pkg/config"
	"testing"
)

func TestNewRejectsUnknownTrigger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dispatcher.Trigger = "webhook"

	if _, err := New(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown trigger")
	}
}

func TestNewCron(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dispatcher.Trigger = config.TriggerCron
	cfg.Dispatcher.Schedule = "* * * * *"

	tr, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.(*Cron); !ok {
		t.Errorf("trigger = %T, want *Cron", tr)
	}
}

func TestCronRunRejectsInvalidSpec(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dispatcher.Schedule = "not a cron spec"

	if err := NewCron(cfg).Run(func() {}); err == nil {
		t.Error("expected error for invalid spec")
	}
}
