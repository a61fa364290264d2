package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FromYAMLAndEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.yaml")

	yaml := `
practicum:
  token: practicum-yaml

telegram:
  token: telegram-yaml
  chat_id: 111
`
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PRACTICUM_TOKEN", "practicum-env")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Practicum.Token != "practicum-env" {
		t.Errorf("env override failed, got %s", c.Practicum.Token)
	}
	if c.Telegram.Token != "telegram-yaml" {
		t.Errorf("yaml value lost, got %s", c.Telegram.Token)
	}
	if c.Telegram.ChatID != 111 {
		t.Errorf("expected chat_id 111, got %d", c.Telegram.ChatID)
	}
	if c.Practicum.Endpoint == "" {
		t.Error("endpoint default not applied")
	}
	if c.Poll.Interval.Seconds() != 600 {
		t.Errorf("expected default 600s interval, got %v", c.Poll.Interval)
	}
}

func TestLoad_MissingValuesListsAllOfThem(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := Load("")

	var missing *MissingConfigError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingConfigError, got %T: %v", err, err)
	}
	if len(missing.Vars) != 3 {
		t.Fatalf("expected all 3 variables reported, got %v", missing.Vars)
	}

	want := map[string]bool{"PRACTICUM_TOKEN": true, "TELEGRAM_TOKEN": true, "TELEGRAM_CHAT_ID": true}
	for _, v := range missing.Vars {
		if !want[v] {
			t.Errorf("unexpected variable %q in %v", v, missing.Vars)
		}
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.yaml")

	c := Default()
	c.Practicum.Token = "p"
	c.Telegram.Token = "t"
	c.Telegram.ChatID = 42

	if err := Save(cfgFile, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	got, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Telegram.ChatID != 42 {
		t.Errorf("expected chat_id 42, got %d", got.Telegram.ChatID)
	}

	info, err := os.Stat(cfgFile)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config holds tokens, expected 0600, got %v", info.Mode().Perm())
	}
}
