// Package config loads service configuration from the environment.
//
// Loading happens in three steps:
//
//  1. Read .env files with github.com/joho/godotenv (skipped when
//     NODE_ENV=production). Process variables win over file values.
//  2. Validate every section against its fieldkit schema. All sections are
//     checked and every failure is reported in one ValidationError.
//  3. Decode the normalised values into Config with
//     github.com/caarlos0/env/v11.
//
// Example:
//
//	cfg, err := config.Load(ctx, config.LoadOptions{Logger: log})
//	if errors.Is(err, config.ErrValidation) {
//		// print err and exit
//	}
package config
