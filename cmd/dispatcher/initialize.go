package main

import (
	"context"
	"fmt"
	"schedify/pkg/config"
	"schedify/pkg/firestore"
	"schedify/pkg/log"
	"schedify/pkg/mail"
)

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if cfg.GoogleCloud.ProjectID == "" {
		log.InitializeStdoutLogger()
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, "schedify-dispatcher")
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func initializeFirestore(ctx context.Context, cfg *config.Config) {
	_, err := firestore.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing firestore, %s", err))
	}
}

func initializeMail(cfg *config.Config) {
	_, err := mail.Initialize(cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing mail, %s", err))
	}
}
