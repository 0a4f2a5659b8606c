package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fieldwork-dev/fieldwork/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return dir
}

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Forms) != 2 {
		t.Fatalf("Expected 2 default forms, got %d", len(cfg.Forms))
	}
	if cfg.Forms[0].Name != "contact" || cfg.Forms[1].Name != "join" {
		t.Errorf("Expected contact and join forms, got %v", cfg.Forms)
	}
	if cfg.Addr() != "localhost:3000" {
		t.Errorf("Expected default addr, got %s", cfg.Addr())
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := writeConfig(t, `{
  "forms": [
    {"name": "contact", "fields": [{"name": "email", "required": true}]}
  ]
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Expected default port, got %d", cfg.Server.Port)
	}
	if cfg.Forms[0].SuccessHideMs != DefaultSuccessHideMs {
		t.Errorf("Expected default hide delay, got %d", cfg.Forms[0].SuccessHideMs)
	}
	if cfg.Forms[0].Fields[0].Label != "email" {
		t.Errorf("Expected label defaulted to name, got %q", cfg.Forms[0].Fields[0].Label)
	}
}

func TestLoadFileMissingIsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), ConfigFileName))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != errors.CodeConfigNotFound {
		t.Errorf("Expected %s, got %v", errors.CodeConfigNotFound, err)
	}
}

func TestLoadFileReadsConfig(t *testing.T) {
	dir := writeConfig(t, `{
  "name": "mysite",
  "forms": [
    {"name": "contact", "fields": [{"name": "email", "required": true}]}
  ]
}`)

	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Name != "mysite" {
		t.Errorf("Expected mysite, got %q", cfg.Name)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	dir := writeConfig(t, `{not json`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != errors.CodeConfigParse {
		t.Errorf("Expected %s, got %v", errors.CodeConfigParse, err)
	}
}

func TestValidateRejectsDuplicateForms(t *testing.T) {
	dir := writeConfig(t, `{
  "forms": [
    {"name": "contact", "fields": [{"name": "email"}]},
    {"name": "contact", "fields": [{"name": "email"}]}
  ]
}`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != errors.CodeDuplicateForm {
		t.Errorf("Expected %s, got %v", errors.CodeDuplicateForm, err)
	}
}

func TestValidateRejectsDuplicateFields(t *testing.T) {
	cfg := &Config{
		Forms: []FormConfig{
			{Name: "contact", Fields: []FieldConfig{{Name: "email"}, {Name: "email"}}},
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for duplicate field")
	}
}

func TestValidateRejectsEmptyForm(t *testing.T) {
	cfg := &Config{Forms: []FormConfig{{Name: "contact"}}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for form without fields")
	}

	cfg = &Config{Forms: []FormConfig{{Fields: []FieldConfig{{Name: "email"}}}}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for form without a name")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Name = "mysite"

	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "mysite" {
		t.Errorf("Expected mysite, got %q", loaded.Name)
	}
	if len(loaded.Forms) != len(cfg.Forms) {
		t.Errorf("Expected %d forms, got %d", len(cfg.Forms), len(loaded.Forms))
	}
}
