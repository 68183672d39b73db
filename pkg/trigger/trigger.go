package trigger

import (
	"context"
	"fmt"
	"schedify/pkg/config"
)

// Trigger fires dispatch cycles. Run blocks for the life of the
// process; errors inside a fired cycle never propagate out of it.
type Trigger interface {
	Run(fire func()) error
	Close() error
}

func New(ctx context.Context, cfg *config.Config) (Trigger, error) {
	switch cfg.Dispatcher.Trigger {
	case config.TriggerCron:
		return NewCron(cfg), nil
	case config.TriggerPubSub:
		return NewPubSub(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown trigger, %s", cfg.Dispatcher.Trigger)
	}
}
