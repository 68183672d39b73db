package main

import (
	"context"
	"fmt"
	"os"
	"schedify/pkg/config"
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

	sender, err := mail.Initialize(cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing mail, %s", err))
	}
	defer sender.Close()

	s := &server{
		cfg:    cfg,
		sender: sender,
	}

	s.start()
}

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if cfg.GoogleCloud.ProjectID == "" {
		log.InitializeStdoutLogger()
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, "schedify-server")
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}
