// Package echomw adapts fieldkit request validation to echo.
package echomw

import (
	"github.com/labstack/echo/v4"

	"github.com/reoring/fieldkit/middleware"
	"github.com/reoring/fieldkit/schema"
)

// ValidateJSON validates the request body against s, stores the validated
// values in the request context on success, or reports the issues (400 by
// default) and stops the chain.
func ValidateJSON(s *schema.Schema, opts ...middleware.Option) echo.MiddlewareFunc {
	cfg := middleware.NewConfig(opts...)
	return validate(cfg, s, func(c echo.Context) (any, error) {
		return middleware.ReadJSON(c.Request(), cfg.MaxBodyBytes)
	})
}

// ValidateQuery validates the query string against s.
func ValidateQuery(s *schema.Schema, opts ...middleware.Option) echo.MiddlewareFunc {
	return validate(middleware.NewConfig(opts...), s, func(c echo.Context) (any, error) {
		return middleware.QueryValues(c.QueryParams()), nil
	})
}

func validate(cfg middleware.Config, s *schema.Schema, read func(echo.Context) (any, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			doc, err := read(c)
			if err == nil {
				var out map[string]any
				if out, err = cfg.Validate(c.Request(), s, doc); err == nil {
					ctx := middleware.ContextWithValues(c.Request().Context(), out)
					c.SetRequest(c.Request().WithContext(ctx))
					return next(c)
				}
			}
			cfg.Fail(c.Response(), c.Request(), err)
			return nil
		}
	}
}

// Values fetches the validated values from echo.Context.
func Values(c echo.Context) (map[string]any, bool) {
	return middleware.ValuesFromContext(c.Request().Context())
}
