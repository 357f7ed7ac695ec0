package config

import (
	"github.com/reoring/fieldkit/field"
	"github.com/reoring/fieldkit/schema"
)

// Section pairs a configuration group with the schema validating its
// variables.
type Section struct {
	Name   string
	Schema *schema.Schema
}

func str() field.Descriptor     { return field.String(field.Options{}) }
func optStr() field.Descriptor  { return field.StringOptional(field.Options{}) }
func boolean() field.Descriptor { return field.Boolean(field.Options{}) }
func port() field.Descriptor {
	return field.Number(field.Options{Int: true, Min: field.Float(0), Max: field.Float(65535)})
}

var (
	appSchema = schema.New("AppConfig").
			Field("APP_PORT", port()).
			Field("APP_NAME", str()).
			Field("APP_URL", str()).
			Field("APP_DEBUG", boolean()).
			Field("APP_FALLBACK_LANGUAGE", str()).
			Field("APP_LOG_LEVEL", str()).
			Field("APP_LOG_SERVICE", str()).
			Field("API_PREFIX", str()).
			Field("NODE_ENV", str()).
			MustBuild()

	databaseSchema = schema.New("DatabaseConfig").
			Field("DB_HOST", str()).
			Field("DB_PORT", port()).
			Field("DB_USERNAME", str()).
			Field("DB_PASSWORD", str()).
			Field("DB_DATABASE", str()).
			MustBuild()

	redisSchema = schema.New("RedisConfig").
			Field("REDIS_HOST", str()).
			Field("REDIS_PORT", port()).
			Field("REDIS_PASSWORD", str()).
			Field("REDIS_TLS_ENABLED", boolean()).
			MustBuild()

	rabbitMQSchema = schema.New("RabbitMQConfig").
			Field("RABBITMQ_HOST", str()).
			Field("RABBITMQ_PORT", port()).
			Field("RABBITMQ_USER", str()).
			Field("RABBITMQ_PASS", str()).
			MustBuild()

	jwtSchema = schema.New("JwtConfig").
			Field("ACCESS_TOKEN_EXPIRES_IN", str()).
			Field("REFRESH_TOKEN_EXPIRES_IN", str()).
			Field("VERIFY_EMAIL_TOKEN_EXPIRES_IN", str()).
			Field("RESET_PASSWORD_TOKEN_EXPIRES_IN", str()).
			MustBuild()

	emailSchema = schema.New("EmailConfig").
			Field("MAIL_HOST", str()).
			Field("MAIL_PORT", port()).
			Field("MAIL_SECURE", boolean()).
			Field("MAIL_USER", optStr()).
			Field("MAIL_PASS", optStr()).
			Field("MAIL_IGNORE_TLS", boolean()).
			Field("MAIL_REQUIRE_TLS", boolean()).
			Field("MAIL_DEFAULT_EMAIL", field.EmailOptional(field.Options{})).
			Field("MAIL_DEFAULT_NAME", optStr()).
			Field("MAIL_CLIENT_PORT", port()).
			MustBuild()

	secretSchema = schema.New("SecretConfig").
			Field("SECRET_ROTATION_KEY", str()).
			MustBuild()
)

// Sections returns every section, in validation order.
func Sections() []Section {
	return []Section{
		{Name: "AppConfig", Schema: appSchema},
		{Name: "DatabaseConfig", Schema: databaseSchema},
		{Name: "RedisConfig", Schema: redisSchema},
		{Name: "RabbitMQConfig", Schema: rabbitMQSchema},
		{Name: "JwtConfig", Schema: jwtSchema},
		{Name: "EmailConfig", Schema: emailSchema},
		{Name: "SecretConfig", Schema: secretSchema},
	}
}

// SectionByName finds a section; used by the CLI.
func SectionByName(name string) (Section, bool) {
	for _, s := range Sections() {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
