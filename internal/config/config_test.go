package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "taskdeck.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_MissingFilesIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Path != "" || cfg.Lists.DefaultStrategy != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, dir, `
[storage]
path = "here/tasks.json"

[lists]
default-strategy = "alphabetical"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Path != "here/tasks.json" {
		t.Errorf("unexpected storage path: %q", cfg.Storage.Path)
	}
	if cfg.Lists.DefaultStrategy != "alphabetical" {
		t.Errorf("unexpected default strategy: %q", cfg.Lists.DefaultStrategy)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", globalDir)
	if err := os.MkdirAll(filepath.Join(globalDir, "taskdeck"), 0o755); err != nil {
		t.Fatalf("failed to create global config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(globalDir, "taskdeck", "taskdeck.toml"), []byte(`
[storage]
path = "global/tasks.json"

[ui]
no-color = true
`), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	dir := t.TempDir()
	writeConfig(t, dir, `
[storage]
path = "project/tasks.json"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Path != "project/tasks.json" {
		t.Errorf("expected project path to win, got %q", cfg.Storage.Path)
	}
	if !cfg.UI.NoColor {
		t.Error("expected global no-color to carry through")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, dir, `storage = `)

	if _, err := Load(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestDocumentPath_Default(t *testing.T) {
	cfg := &Config{}
	path, err := cfg.DocumentPath()
	if err != nil {
		t.Fatalf("failed to resolve path: %v", err)
	}
	if filepath.Base(path) != "tasks.json" {
		t.Errorf("unexpected default path: %q", path)
	}
}
