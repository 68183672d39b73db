package main

import (
	"context"
	"schedify/pkg/config"
	"schedify/pkg/dispatch"
	"schedify/pkg/firestore"
	"schedify/pkg/log"
	"schedify/pkg/mail"
	"schedify/pkg/trigger"
)

type dispatcher struct {
	ctx context.Context
	cfg *config.Config
}

func (d *dispatcher) start() {
	logger := log.Logger()
	logger.Debug(nil, "starting dispatcher")

	core := dispatch.NewDispatcher(firestore.Get(), mail.Get(), d.cfg.Dispatcher.TimezoneOffsetHours)

	t, err := trigger.New(d.ctx, d.cfg)
	if err != nil {
		panic(err)
	}
	defer t.Close()

	logger.Infof(nil, "dispatching on %s trigger", d.cfg.Dispatcher.Trigger)

	err = t.Run(func() {
		core.RunCycle(d.ctx)
	})
	if err != nil {
		logger.Errorf(nil, "trigger stopped, %s", err)
	}
}
