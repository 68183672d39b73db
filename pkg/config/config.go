package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Config struct {
	GoogleCloud GoogleCloudConfig `yaml:"google_cloud"`
	SMTP        SMTPConfig        `yaml:"smtp"`
	Dispatcher  DispatcherConfig  `yaml:"dispatcher"`
	Server      ServerConfig      `yaml:"server"`
}

type GoogleCloudConfig struct {
	ProjectID              string `yaml:"project_id"`
	ServiceAccountFilename string `yaml:"service_account_filename"`
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string `yaml:"from_name"`
	FromAddress string `yaml:"from_address"`
}

const (
	TriggerCron   = "cron"
	TriggerPubSub = "pubsub"
)

type DispatcherConfig struct {
	// Schedule is a 5-field cron spec. Selection is an exact minute
	// match, so anything coarser than once per minute leaves reminders
	// unfired.
	Schedule            string `yaml:"schedule"`
	TimezoneOffsetHours int    `yaml:"timezone_offset_hours"`
	Trigger             string `yaml:"trigger"`
	Topic               string `yaml:"topic"`
	Subscription        string `yaml:"subscription"`
}

type ServerConfig struct {
	Port int
}

func ReadConfig(filename string) (*Config, error) {
	f, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	err = yaml.Unmarshal(f, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Dispatcher.Schedule == "" {
		cfg.Dispatcher.Schedule = "* * * * *"
	}
	if cfg.Dispatcher.TimezoneOffsetHours == 0 {
		cfg.Dispatcher.TimezoneOffsetHours = 8
	}
	if cfg.Dispatcher.Trigger == "" {
		cfg.Dispatcher.Trigger = TriggerCron
	}

	return cfg, nil
}
