package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	appErrors "emissor/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != DefaultTheme {
		t.Fatalf("expected default %s to be %q, got %q", KeyTheme, DefaultTheme, got)
	}
	if got := OutputFormat(); got != FormatHex {
		t.Fatalf("expected default output format hex, got %q", got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
	if got := GetString(KeyMarkdownStyle); got != "dark" {
		t.Fatalf("expected default %s to be dark, got %q", KeyMarkdownStyle, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "certs", "templates")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, ".emissor", "config.yaml"), `
theme: light
output:
  format: rgb
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: dark
debug: true
output:
  format: hex
`)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "light" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := OutputFormat(); got != FormatRGB {
		t.Fatalf("expected project output format rgb, got %q", got)
	}
	if !GetBool(KeyDebug) {
		t.Fatalf("expected user config debug=true to survive the merge")
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".emissor", "config.yaml")
	writeFile(t, projectCfg, `
theme: dark
preview:
  markdown-style: light
`)

	t.Setenv("EMISSOR_THEME", "light")
	t.Setenv("EMISSOR_PREVIEW_MARKDOWN_STYLE", "plain")

	if err := Initialize(
		WithWorkingDir(tmp),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "user.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "light" {
		t.Fatalf("expected environment to override %s, got %q", KeyTheme, got)
	}
	if got := GetString(KeyMarkdownStyle); got != "plain" {
		t.Fatalf("expected environment to override %s, got %q", KeyMarkdownStyle, got)
	}

	if err := ApplyOverrides(map[string]any{KeyTheme: "dark", KeyOutputFormat: "RGB"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "dark" {
		t.Fatalf("expected CLI override to set %s=dark, got %q", KeyTheme, got)
	}
	if got := OutputFormat(); got != FormatRGB {
		t.Fatalf("expected override output format rgb, got %q", got)
	}
}

func TestOutputFormatFallsBackToHex(t *testing.T) {
	cleanup := ResetForTesting(t)
	t.Cleanup(cleanup)

	if err := Set(KeyOutputFormat, "cmyk"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := OutputFormat(); got != FormatHex {
		t.Fatalf("OutputFormat() = %q, want hex", got)
	}
}

func TestMalformedConfigIsConfigurationError(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "theme: [unterminated\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("Initialize error = %v, want configuration error", err)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "home", ".emissor", "config.yaml")
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if err := SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), "theme: light") {
		t.Fatalf("saved config missing theme, got:\n%s", data)
	}
	if got := GetString(KeyTheme); got != "light" {
		t.Fatalf("expected running config to pick up saved theme, got %q", got)
	}
}

func TestSaveThemePrefersProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".emissor", "config.yaml")
	writeFile(t, projectCfg, "output:\n  format: rgb\n")
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(projectCfg)
	if err != nil {
		t.Fatalf("read project config: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "theme: light") || !strings.Contains(text, "format: rgb") {
		t.Fatalf("project config not updated in place:\n%s", text)
	}
	if _, err := os.Stat(userCfg); err == nil {
		t.Fatalf("user config should not have been created")
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
