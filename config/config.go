package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/schema"
)

var (
	// ErrValidation marks configuration that failed schema validation.
	ErrValidation = errors.New("config: validation failed")
	// ErrParsing marks configuration that validated but could not be decoded.
	ErrParsing = errors.New("config: parsing failed")
)

// Config is the full service configuration.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Jwt      JwtConfig
	Email    EmailConfig
	Secret   SecretConfig
}

type AppConfig struct {
	Port             int    `env:"APP_PORT"`
	Name             string `env:"APP_NAME"`
	URL              string `env:"APP_URL"`
	Debug            bool   `env:"APP_DEBUG"`
	FallbackLanguage string `env:"APP_FALLBACK_LANGUAGE"`
	LogLevel         string `env:"APP_LOG_LEVEL"`
	LogService       string `env:"APP_LOG_SERVICE"`
	APIPrefix        string `env:"API_PREFIX"`
	NodeEnv          string `env:"NODE_ENV"`
}

// Production reports whether NODE_ENV is "production".
func (a AppConfig) Production() bool { return a.NodeEnv == "production" }

type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT"`
	Username string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_DATABASE"`
}

type RedisConfig struct {
	Host       string `env:"REDIS_HOST"`
	Port       int    `env:"REDIS_PORT"`
	Password   string `env:"REDIS_PASSWORD"`
	TLSEnabled bool   `env:"REDIS_TLS_ENABLED"`
}

type RabbitMQConfig struct {
	Host string `env:"RABBITMQ_HOST"`
	Port int    `env:"RABBITMQ_PORT"`
	User string `env:"RABBITMQ_USER"`
	Pass string `env:"RABBITMQ_PASS"`
}

type JwtConfig struct {
	AccessTokenExpiresIn        string `env:"ACCESS_TOKEN_EXPIRES_IN"`
	RefreshTokenExpiresIn       string `env:"REFRESH_TOKEN_EXPIRES_IN"`
	VerifyEmailTokenExpiresIn   string `env:"VERIFY_EMAIL_TOKEN_EXPIRES_IN"`
	ResetPasswordTokenExpiresIn string `env:"RESET_PASSWORD_TOKEN_EXPIRES_IN"`
}

type EmailConfig struct {
	Host         string `env:"MAIL_HOST"`
	Port         int    `env:"MAIL_PORT"`
	Secure       bool   `env:"MAIL_SECURE"`
	User         string `env:"MAIL_USER"`
	Pass         string `env:"MAIL_PASS"`
	IgnoreTLS    bool   `env:"MAIL_IGNORE_TLS"`
	RequireTLS   bool   `env:"MAIL_REQUIRE_TLS"`
	DefaultEmail string `env:"MAIL_DEFAULT_EMAIL"`
	DefaultName  string `env:"MAIL_DEFAULT_NAME"`
	ClientPort   int    `env:"MAIL_CLIENT_PORT"`
}

type SecretConfig struct {
	RotationKey string `env:"SECRET_ROTATION_KEY"`
}

// SectionFailure holds the issues of one section.
type SectionFailure struct {
	Section string
	Issues  fieldkit.Issues
}

// ValidationError aggregates the failures of every section.
type ValidationError struct {
	Failures []SectionFailure
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	for i, f := range e.Failures {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Validation failed for %s configuration:", f.Section)
		for _, prop := range f.Issues.Paths() {
			fmt.Fprintf(&b, "\nProperty: %s", strings.TrimPrefix(prop, "/"))
			for _, it := range f.Issues.At(prop) {
				fmt.Fprintf(&b, "\n+ %s", it.Message)
			}
		}
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Issues flattens all section issues.
func (e *ValidationError) Issues() fieldkit.Issues {
	var all fieldkit.Issues
	for _, f := range e.Failures {
		all = append(all, f.Issues...)
	}
	return all
}

// LoadOptions configures Load. The zero value reads .env and the process
// environment and validates every section.
type LoadOptions struct {
	// Files are the dotenv files to read; nil means ".env". Missing files
	// are skipped.
	Files []string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
	// Sections to validate; nil means Sections().
	Sections  []Section
	Validator *schema.Validator
	Logger    zerolog.Logger
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}

// Load reads, validates and decodes the configuration.
func Load(ctx context.Context, o LoadOptions) (*Config, error) {
	start := time.Now()
	vars := o.Environ
	if vars == nil {
		vars = Environ()
	}
	merged, err := withDotenv(vars, o.Files)
	if err != nil {
		o.Logger.Error().Err(err).Msg("reading dotenv files")
		return nil, err
	}

	v := o.Validator
	if v == nil {
		v = schema.NewValidator(schema.WithLogger(o.Logger))
	}
	sections := o.Sections
	if sections == nil {
		sections = Sections()
	}
	normalized, err := Validate(ctx, v, merged, sections)
	if err != nil {
		o.Logger.Error().Err(err).Msg("configuration invalid")
		return nil, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: normalized}); err != nil {
		err = errors.Join(ErrParsing, err)
		o.Logger.Error().Err(err).Msg("decoding configuration")
		return nil, err
	}
	o.Logger.Info().Int("sections", len(sections)).Dur("took", time.Since(start)).Msg("configuration loaded")
	return &cfg, nil
}

// withDotenv overlays dotenv values under vars. Variables already set win.
func withDotenv(vars map[string]string, files []string) (map[string]string, error) {
	out := make(map[string]string, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	if vars["NODE_ENV"] == "production" {
		return out, nil
	}
	if files == nil {
		files = []string{".env"}
	}
	for _, f := range files {
		fileVars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", f, err)
		}
		for k, v := range fileVars {
			if _, set := out[k]; !set {
				out[k] = v
			}
		}
	}
	return out, nil
}

// Validate checks vars against every section (fail-slow across sections).
// Empty values count as unset. On success it returns vars with validated
// values in canonical form (booleans as "true"/"false", whole numbers
// without a fraction) so the decoder sees exactly what was validated.
func Validate(ctx context.Context, v *schema.Validator, vars map[string]string, sections []Section) (map[string]string, error) {
	in := make(map[string]any, len(vars))
	for k, val := range vars {
		if val != "" {
			in[k] = val
		}
	}
	out := make(map[string]string, len(vars))
	for k, val := range vars {
		out[k] = val
	}

	var verr ValidationError
	for _, s := range sections {
		got, err := v.Validate(ctx, s.Schema, in)
		if err != nil {
			iss, ok := fieldkit.AsIssues(err)
			if !ok {
				return nil, err
			}
			verr.Failures = append(verr.Failures, SectionFailure{Section: s.Name, Issues: iss})
			continue
		}
		for k, val := range got {
			out[k] = canonical(val)
		}
	}
	if len(verr.Failures) > 0 {
		return nil, &verr
	}
	return out, nil
}

func canonical(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
