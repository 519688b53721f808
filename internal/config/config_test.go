package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLYOUT_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UI.Unmount {
		t.Fatalf("ui.unmount default = false, want true")
	}
	if !cfg.UI.Mouse {
		t.Fatalf("ui.mouse default = false, want true")
	}
	if len(cfg.Keys) != 0 {
		t.Fatalf("keys default = %v, want empty", cfg.Keys)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[ui]\nunmount = false\nmouse = false\n\n[keys]\ndismiss = [\"ctrl+g\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FLYOUT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Unmount {
		t.Fatalf("ui.unmount = true, want false from file")
	}
	if cfg.UI.Mouse {
		t.Fatalf("ui.mouse = true, want false from file")
	}
	if got := cfg.Keys["dismiss"]; len(got) != 1 || got[0] != "ctrl+g" {
		t.Fatalf("keys.dismiss = %v, want [ctrl+g]", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\nmouse = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FLYOUT_CONFIG", path)
	t.Setenv("FLYOUT_UI_MOUSE", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Mouse {
		t.Fatalf("ui.mouse = true, want env override false")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FLYOUT_CONFIG", path)

	in := Config{
		UI:   UIConfig{Unmount: false, Mouse: true},
		Keys: map[string][]string{"activate": {"enter"}},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.UI.Unmount != in.UI.Unmount || out.UI.Mouse != in.UI.Mouse {
		t.Fatalf("ui round-trip = %+v, want %+v", out.UI, in.UI)
	}
	if got := out.Keys["activate"]; len(got) != 1 || got[0] != "enter" {
		t.Fatalf("keys round-trip = %v, want [enter]", out.Keys)
	}
}
