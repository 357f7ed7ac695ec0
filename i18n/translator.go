package i18n

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Translator retrieves localized messages for rule names and issue codes.
// params provides values to embed in the message (for example "min" or
// "property").
type Translator interface {
	Message(key string, params map[string]any) string
}

// Catalog is an immutable dictionary Translator. Templates reference params
// as {name}; the special {each} placeholder expands to the catalog's
// per-element prefix when params["each"] is true.
type Catalog struct {
	lang     string
	each     string
	messages map[string]string
	fallback *Catalog
}

// NewCatalog builds a catalog for lang. eachPrefix is substituted for {each}
// on elements of repeated fields. Keys missing from messages resolve through
// fallback (which may be nil).
func NewCatalog(lang, eachPrefix string, messages map[string]string, fallback *Catalog) *Catalog {
	m := make(map[string]string, len(messages))
	for k, v := range messages {
		m[k] = v
	}
	return &Catalog{lang: lang, each: eachPrefix, messages: m, fallback: fallback}
}

// Lang returns the catalog language tag.
func (c *Catalog) Lang() string { return c.lang }

// With returns a copy of c with messages overriding existing entries.
func (c *Catalog) With(messages map[string]string) *Catalog {
	out := NewCatalog(c.lang, c.each, c.messages, c.fallback)
	for k, v := range messages {
		out.messages[k] = v
	}
	return out
}

// Template returns the raw template for key, following fallbacks.
func (c *Catalog) Template(key string) (string, bool) {
	for cur := c; cur != nil; cur = cur.fallback {
		if t, ok := cur.messages[key]; ok {
			return t, true
		}
	}
	return "", false
}

// Message renders the template for key. Unknown keys render as the key itself.
func (c *Catalog) Message(key string, params map[string]any) string {
	tpl, ok := c.Template(key)
	if !ok {
		return key
	}
	return c.Render(tpl, params)
}

// Render substitutes params into an arbitrary template using c's {each} prefix.
func (c *Catalog) Render(tpl string, params map[string]any) string {
	if !strings.Contains(tpl, "{") {
		return tpl
	}
	each := ""
	if b, _ := params["each"].(bool); b {
		each = c.each
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		if k != "each" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys)+2)
	pairs = append(pairs, "{each}", each)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", FormatParam(params[k]))
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// FormatParam renders a message parameter. String lists render as a quoted
// list (["ASC","DESC"]); everything else uses fmt.
func FormatParam(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		q := make([]string, len(t))
		for i, s := range t {
			q[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(q, ",") + "]"
	case []any:
		q := make([]string, len(t))
		for i, e := range t {
			if s, ok := e.(string); ok {
				q[i] = strconv.Quote(s)
				continue
			}
			q[i] = fmt.Sprint(e)
		}
		return "[" + strings.Join(q, ",") + "]"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Render renders tpl with t when t can render arbitrary templates (as *Catalog
// does), falling back to the default catalog otherwise.
func Render(t Translator, tpl string, params map[string]any) string {
	if r, ok := t.(interface {
		Render(string, map[string]any) string
	}); ok {
		return r.Render(tpl, params)
	}
	return Default().Render(tpl, params)
}
