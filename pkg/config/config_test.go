package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(filename, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestReadConfig(t *testing.T) {
	filename := writeConfig(t, `
google_cloud:
  project_id: schedify-test
  service_account_filename: sa.json
smtp:
  host: smtp.gmail.com
  port: 587
  username: bot@example.com
  password: secret
  from_name: Schedify
  from_address: bot@example.com
dispatcher:
  schedule: "* * * * *"
  timezone_offset_hours: 8
  trigger: pubsub
  topic: reminder-ticks
  subscription: reminder-ticks-sub
server:
  port: 8080
`)

	cfg, err := ReadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.GoogleCloud.ProjectID != "schedify-test" {
		t.Errorf("ProjectID = %q", cfg.GoogleCloud.ProjectID)
	}
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != 587 {
		t.Errorf("SMTP = %+v", cfg.SMTP)
	}
	if cfg.Dispatcher.Trigger != TriggerPubSub || cfg.Dispatcher.Subscription != "reminder-ticks-sub" {
		t.Errorf("Dispatcher = %+v", cfg.Dispatcher)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	filename := writeConfig(t, `
smtp:
  host: localhost
  port: 25
`)

	cfg, err := ReadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Dispatcher.Schedule != "* * * * *" {
		t.Errorf("Schedule default = %q", cfg.Dispatcher.Schedule)
	}
	if cfg.Dispatcher.TimezoneOffsetHours != 8 {
		t.Errorf("TimezoneOffsetHours default = %d", cfg.Dispatcher.TimezoneOffsetHours)
	}
	if cfg.Dispatcher.Trigger != TriggerCron {
		t.Errorf("Trigger default = %q", cfg.Dispatcher.Trigger)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
