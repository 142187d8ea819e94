// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Note: tests in this file mutate package-level overrides and env
// vars, so they do not run in parallel.

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if !strings.HasSuffix(cfg.RubiesDir, ".rubies") {
		t.Errorf("RubiesDir = %q, want ~/.rubies default", cfg.RubiesDir)
	}
	if !strings.HasSuffix(cfg.GemsDir, ".gem") {
		t.Errorf("GemsDir = %q, want ~/.gem default", cfg.GemsDir)
	}
}

func TestLoad_ReadsCUEConfigFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := "rubies_dir: \"/opt/rubies\"\ngems_dir: \"/opt/gems\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.RubiesDir != "/opt/rubies" {
		t.Errorf("RubiesDir = %q, want /opt/rubies", cfg.RubiesDir)
	}
	if cfg.GemsDir != "/opt/gems" {
		t.Errorf("GemsDir = %q, want /opt/gems", cfg.GemsDir)
	}
}

func TestLoad_ReadsTOMLConfigFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := "rubies_dir = \"/srv/rubies\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.RubiesDir != "/srv/rubies" {
		t.Errorf("RubiesDir = %q, want /srv/rubies", cfg.RubiesDir)
	}
	// gems_dir not set in the file, default must survive the merge
	if !strings.HasSuffix(cfg.GemsDir, ".gem") {
		t.Errorf("GemsDir = %q, want ~/.gem default", cfg.GemsDir)
	}
}

func TestLoad_CUETakesPrecedenceOverTOML(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte("rubies_dir: \"/from-cue\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("rubies_dir = \"/from-toml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.RubiesDir != "/from-cue" {
		t.Errorf("RubiesDir = %q, want /from-cue", cfg.RubiesDir)
	}
}

func TestLoad_RejectsUnknownCUEFields(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := "rubies_dir: \"/opt/rubies\"\nbogus_key: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject fields outside the schema")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte("rubies_dir: \"/from-file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHRB_RUBIES_DIR", "/from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.RubiesDir != "/from-env" {
		t.Errorf("RubiesDir = %q, want /from-env", cfg.RubiesDir)
	}
}

func TestLoad_ExplicitFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(path, []byte("gems_dir: \"/custom/gems\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigFilePathOverride(path)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.GemsDir != "/custom/gems" {
		t.Errorf("GemsDir = %q, want /custom/gems", cfg.GemsDir)
	}
}

func TestCreateDefaultConfig_Idempotent(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() unexpected error: %v", err)
	}

	path := filepath.Join(dir, "config.cue")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// A second call must not overwrite an existing file.
	if err := os.WriteFile(path, []byte("rubies_dir: \"/edited\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() second call error: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(second) == string(first) {
		t.Error("CreateDefaultConfig() overwrote an existing file")
	}
}

func TestGenerateCUE_RoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	in := &Config{RubiesDir: "/opt/rubies", GemsDir: "/opt/gems"}
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(GenerateCUE(in)), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if out.RubiesDir != in.RubiesDir || out.GemsDir != in.GemsDir {
		t.Errorf("Load() = %+v, want %+v", out, in)
	}
}
