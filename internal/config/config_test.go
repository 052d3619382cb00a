package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assert.EqualValues(t, DefaultConfig, *cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHROMECOOKIES_FORMAT", "curl")
	t.Setenv("CHROMECOOKIES_BROWSER", "brave")
	t.Setenv("CHROMECOOKIES_PROFILE", "Profile 2")
	t.Setenv("CHROMECOOKIES_COOKIE_FILE", "/tmp/Cookies")
	t.Setenv("CHROMECOOKIES_ITERATIONS", "1003")
	t.Setenv("CHROMECOOKIES_PASSPHRASE", "hunter2")
	t.Setenv("CHROMECOOKIES_DEBUG", "true")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assert.Equal(t, "curl", cfg.Format)
	assert.Equal(t, "brave", cfg.Browser)
	assert.Equal(t, "Profile 2", cfg.Profile)
	assert.Equal(t, "/tmp/Cookies", cfg.CookieFile)
	assert.Equal(t, 1003, cfg.Iterations)
	assert.Equal(t, "hunter2", cfg.Passphrase)
	assert.True(t, cfg.Debug)
}

func TestFlagsBeatEnv(t *testing.T) {
	t.Setenv("CHROMECOOKIES_FORMAT", "curl")

	cfg, err := Load(map[string]any{"format": "header", "iterations": 5})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assert.Equal(t, "header", cfg.Format)
	assert.Equal(t, 5, cfg.Iterations)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown format", map[string]string{"CHROMECOOKIES_FORMAT": "xml"}},
		{"unknown browser", map[string]string{"CHROMECOOKIES_BROWSER": "netscape"}},
		{"empty profile", map[string]string{"CHROMECOOKIES_PROFILE": ""}},
		{"negative iterations", map[string]string{"CHROMECOOKIES_ITERATIONS": "-1"}},
		{"non-numeric iterations", map[string]string{"CHROMECOOKIES_ITERATIONS": "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(nil)
			assert.Error(t, err)
		})
	}
}

func TestInvalidFormatMessage(t *testing.T) {
	_, err := Load(map[string]any{"format": "xml"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `format must be one of`)
		assert.Contains(t, err.Error(), `"xml"`)
	}
}

func TestPlatformOptions(t *testing.T) {
	cfg, err := Load(map[string]any{"browser": "edge", "cookie_file": "/tmp/Cookies", "passphrase": "p"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	opts, err := cfg.PlatformOptions()
	if err != nil {
		t.Fatalf("PlatformOptions() error: %v", err)
	}
	assert.Equal(t, "edge", opts.Browser.ID)
	assert.Equal(t, "/tmp/Cookies", opts.CookieFile)
	assert.Equal(t, "p", opts.Passphrase)
	assert.Equal(t, "Default", opts.Profile)
}

func TestLoadDefaultError(t *testing.T) {
	orig := defaultLoader
	t.Cleanup(func() { defaultLoader = orig })
	defaultLoader = func(k *koanf.Koanf) error {
		assert.NotNil(t, k)
		return assert.AnError
	}
	_, err := Load(nil)
	if !errors.Is(err, assert.AnError) {
		t.Fatalf("expected assert.AnError, got: %v", err)
	}
}

func TestLoadEnvError(t *testing.T) {
	orig := envLoader
	t.Cleanup(func() { envLoader = orig })
	envLoader = func(k *koanf.Koanf) error {
		assert.NotNil(t, k)
		return assert.AnError
	}
	_, err := Load(nil)
	if !errors.Is(err, assert.AnError) {
		t.Fatalf("expected assert.AnError, got: %v", err)
	}
}

func TestRegisterValidationFails(t *testing.T) {
	orig := registerValidators
	t.Cleanup(func() { registerValidators = orig })
	registerValidators = func(v *validator.Validate) error {
		assert.NotNil(t, v)
		return assert.AnError
	}
	_, err := Load(nil)
	if !errors.Is(err, assert.AnError) {
		t.Fatalf("expected assert.AnError, got: %v", err)
	}
}
