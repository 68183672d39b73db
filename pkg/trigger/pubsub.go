package trigger

import (
	"cloud.google.com/go/pubsub"
	"context"
	"fmt"
	"google.golang.org/api/option"
	"schedify/pkg/config"
)

// PubSub fires one cycle per tick message on a subscription, for
// deployments where Cloud Scheduler publishes the every-minute tick
// instead of an in-process cron.
type PubSub struct {
	ctx          context.Context
	client       *pubsub.Client
	subscription *pubsub.Subscription
}

func NewPubSub(ctx context.Context, cfg *config.Config) (*PubSub, error) {
	client, err := pubsub.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating pubsub client, %s", err)
	}

	subscription := client.Subscription(cfg.Dispatcher.Subscription)
	if subscription == nil {
		return nil, fmt.Errorf("invalid subscription, %s", cfg.Dispatcher.Subscription)
	}

	return &PubSub{
		ctx:          ctx,
		client:       client,
		subscription: subscription,
	}, nil
}

func (t *PubSub) Run(fire func()) error {
	return t.subscription.Receive(t.ctx, func(ctx context.Context, message *pubsub.Message) {
		message.Ack()
		fire()
	})
}

func (t *PubSub) Close() error {
	return t.client.Close()
}
