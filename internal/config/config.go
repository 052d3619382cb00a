// Package config loads chromecookies settings. Values are layered as
// defaults, then CHROMECOOKIES_* environment variables, then command line
// flags, and the result is validated before use.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/warpdl/chromecookies/internal/cookies"
)

// EnvPrefix is stripped from environment variable names; the remainder is
// lower-cased to form the key, e.g. CHROMECOOKIES_COOKIE_FILE -> cookie_file.
const EnvPrefix = "CHROMECOOKIES_"

// Config is the merged runtime configuration.
type Config struct {
	Format      string `koanf:"format" validate:"cookie_format"`
	Browser     string `koanf:"browser" validate:"browser"`
	Profile     string `koanf:"profile" validate:"required"`
	UserDataDir string `koanf:"user_data_dir"`
	CookieFile  string `koanf:"cookie_file"`
	// Iterations overrides the platform PBKDF2 count when positive.
	Iterations int `koanf:"iterations" validate:"gte=0"`
	// Passphrase replaces the keychain or secret-tool lookup when set.
	Passphrase string `koanf:"passphrase"`
	Debug      bool   `koanf:"debug"`
	LogFile    string `koanf:"log_file"`
}

// DefaultConfig holds the values used when nothing else is set.
var DefaultConfig = Config{
	Format:  string(cookies.FormatObject),
	Browser: cookies.Browsers[0].ID,
	Profile: cookies.DefaultProfile,
}

var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DefaultConfig, "koanf"), nil)
}

var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil)
}

var registerValidators = func(v *validator.Validate) error {
	if err := v.RegisterValidation("cookie_format", validFormat); err != nil {
		return err
	}
	return v.RegisterValidation("browser", validBrowser)
}

func validFormat(fl validator.FieldLevel) bool {
	_, err := cookies.ParseFormat(fl.Field().String())
	return err == nil
}

func validBrowser(fl validator.FieldLevel) bool {
	_, err := cookies.ParseBrowser(fl.Field().String())
	return err == nil
}

// Load builds the configuration. overrides carries flags the user set
// explicitly, keyed like the koanf tags; it may be nil.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error: cannot load default config: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error: cannot load config from environment: %w", err)
	}
	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("error: cannot apply --%s: %w", strings.ReplaceAll(key, "_", "-"), err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error: cannot decode config: %w", err)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidators(v); err != nil {
		return nil, fmt.Errorf("error: cannot register validators: %w", err)
	}
	if err := v.Struct(cfg); err != nil {
		return nil, describe(err)
	}
	return &cfg, nil
}

// describe turns validator output into one readable error naming the keys.
func describe(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("error: invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "cookie_format":
			msgs = append(msgs, fmt.Sprintf("format must be one of %v, got %q", cookies.Formats, fe.Value()))
		case "browser":
			msgs = append(msgs, fmt.Sprintf("browser must be one of %v, got %q", cookies.BrowserIDs(), fe.Value()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must not be negative", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("error: invalid config: %s: %w", strings.Join(msgs, "; "), err)
}

// PlatformOptions maps the configuration onto the cookie engine's knobs.
func (c *Config) PlatformOptions() (cookies.PlatformOptions, error) {
	b, err := cookies.ParseBrowser(c.Browser)
	if err != nil {
		return cookies.PlatformOptions{}, err
	}
	return cookies.PlatformOptions{
		Browser:     b,
		Profile:     c.Profile,
		UserDataDir: c.UserDataDir,
		CookieFile:  c.CookieFile,
		Iterations:  c.Iterations,
		Passphrase:  c.Passphrase,
	}, nil
}
