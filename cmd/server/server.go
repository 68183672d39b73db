package main

import (
	"fmt"
	nativeLog "log"
	"net/http"
	"schedify/pkg/config"
	"schedify/pkg/log"
	"schedify/pkg/mail"
)

type server struct {
	cfg    *config.Config
	sender mail.Sender
}

func (s *server) start() {
	logger := log.Logger()
	logger.Rawf(log.Info, "starting send server on :%d", s.cfg.Server.Port)

	http.HandleFunc("/send", s.sendHandler)
	nativeLog.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", s.cfg.Server.Port), nil))
}
