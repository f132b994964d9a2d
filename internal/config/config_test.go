package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrDefault_NoFile(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if cfg.MimeType != DefaultMimeType {
		t.Errorf("MimeType = %q, want %q", cfg.MimeType, DefaultMimeType)
	}
	if cfg.AppPackage != DefaultAppPackage {
		t.Errorf("AppPackage = %q, want %q", cfg.AppPackage, DefaultAppPackage)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	want := &Config{
		Version:    Version,
		MimeType:   "application/vnd.example+json",
		AppPackage: "com.example.tags",
		LogLevel:   "debug",
	}

	if err := SaveConfig(dir, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *got != *want {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".nfcfactory"), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(Path(dir), []byte(`{"app_package":"com.example.tags"}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.AppPackage != "com.example.tags" {
		t.Errorf("AppPackage = %q", cfg.AppPackage)
	}
	if cfg.MimeType != DefaultMimeType {
		t.Errorf("MimeType = %q, want default", cfg.MimeType)
	}
	if cfg.Version != Version {
		t.Errorf("Version = %q, want %q", cfg.Version, Version)
	}
}

func TestLoadOrDefault_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".nfcfactory"), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(Path(dir), []byte("{"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadOrDefault(dir); err == nil {
		t.Fatal("expected parse error for corrupt config")
	}
}
