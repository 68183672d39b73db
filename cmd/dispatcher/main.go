package main

import (
	"context"
	"os"
	"schedify/pkg/config"
	"schedify/pkg/firestore"
	"schedify/pkg/log"
	"schedify/pkg/mail"
)

const defaultConfigFilename = "config.yaml"

func main() {
	ctx := context.Background()

	configFilename := defaultConfigFilename
	if len(os.Args) > 1 {
		configFilename = os.Args[1]
	}

	cfg, err := config.ReadConfig(configFilename)
	if err != nil {
		panic(err)
	}

	initializeLogger(ctx, cfg)
	defer log.Logger().Close()

	initializeFirestore(ctx, cfg)
	defer firestore.Get().Close()

	initializeMail(cfg)
	defer mail.Get().Close()

	d := &dispatcher{
		ctx: ctx,
		cfg: cfg,
	}

	d.start()
}
