// Package ginmw adapts fieldkit request validation to gin.
package ginmw

import (
	"github.com/gin-gonic/gin"

	"github.com/reoring/fieldkit/middleware"
	"github.com/reoring/fieldkit/schema"
)

// ValidateJSON validates the request body against s, stores the validated
// values in the request context, and on failure reports the issues (400 by
// default) and aborts.
func ValidateJSON(s *schema.Schema, opts ...middleware.Option) gin.HandlerFunc {
	cfg := middleware.NewConfig(opts...)
	return validate(cfg, s, func(c *gin.Context) (any, error) {
		return middleware.ReadJSON(c.Request, cfg.MaxBodyBytes)
	})
}

// ValidateQuery validates the query string against s.
func ValidateQuery(s *schema.Schema, opts ...middleware.Option) gin.HandlerFunc {
	return validate(middleware.NewConfig(opts...), s, func(c *gin.Context) (any, error) {
		return middleware.QueryValues(c.Request.URL.Query()), nil
	})
}

func validate(cfg middleware.Config, s *schema.Schema, read func(*gin.Context) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := read(c)
		if err == nil {
			var out map[string]any
			if out, err = cfg.Validate(c.Request, s, doc); err == nil {
				c.Request = c.Request.WithContext(middleware.ContextWithValues(c.Request.Context(), out))
				c.Next()
				return
			}
		}
		cfg.Fail(c.Writer, c.Request, err)
		c.Abort()
	}
}

// Values fetches the validated values from gin.Context.
func Values(c *gin.Context) (map[string]any, bool) {
	return middleware.ValuesFromContext(c.Request.Context())
}
