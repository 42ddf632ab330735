package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Agency.Name != "Agência Gand" {
		t.Errorf("Agency.Name = %q", cfg.Agency.Name)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Appearance.Theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Defaults.ImplementationValue != nil {
		t.Error("Defaults.ImplementationValue should be unset")
	}
	if Exists() {
		t.Error("Exists() = true for missing file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	impl := 7500.0
	cfg := DefaultConfig()
	cfg.Agency.Name = "Outra Agência"
	cfg.Export.OutputDir = "/tmp/propostas"
	cfg.Defaults.ImplementationValue = &impl

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Agency.Name != "Outra Agência" {
		t.Errorf("Agency.Name = %q", loaded.Agency.Name)
	}
	if loaded.Export.OutputDir != "/tmp/propostas" {
		t.Errorf("Export.OutputDir = %q", loaded.Export.OutputDir)
	}
	if loaded.Defaults.ImplementationValue == nil || *loaded.Defaults.ImplementationValue != 7500 {
		t.Errorf("Defaults.ImplementationValue = %v", loaded.Defaults.ImplementationValue)
	}
	if loaded.Defaults.MaintenanceValue != nil {
		t.Error("Defaults.MaintenanceValue should stay unset")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "orca", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Appearance.Theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Agency.Name != "Agência Gand" {
		t.Errorf("Agency.Name = %q, want default", cfg.Agency.Name)
	}
}
