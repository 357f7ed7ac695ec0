package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/fieldkit/i18n"
)

func TestCatalog_RendersParamsAndEach(t *testing.T) {
	en := i18n.English()
	assert.Equal(t, "limit must not be less than 1", en.Message("min", map[string]any{"property": "limit", "min": 1.0}))
	assert.Equal(t, "each value in tags must be a string", en.Message("isString", map[string]any{"property": "tags", "each": true}))
	assert.Equal(t, `order must be one of the following values: ["ASC","DESC"]`,
		en.Message("isEnum", map[string]any{"property": "order", "values": []string{"ASC", "DESC"}}))
	assert.Equal(t, "no_such_key", en.Message("no_such_key", nil))
}

func TestCatalog_VietnameseFallsBackToEnglish(t *testing.T) {
	vi := i18n.Vietnamese().With(map[string]string{"onlyEnglish": ""})
	msg := vi.Message("isString", map[string]any{"property": "q"})
	assert.Equal(t, "q phải là chuỗi", msg)

	en := i18n.English().With(map[string]string{"custom": "{property} is custom"})
	vi2 := i18n.NewCatalog("vi", "", nil, en)
	assert.Equal(t, "x is custom", vi2.Message("custom", map[string]any{"property": "x"}))
}

func TestCatalog_WithDoesNotMutateOriginal(t *testing.T) {
	_ = i18n.English().With(map[string]string{"min": "override"})
	assert.NotEqual(t, "override", i18n.English().Message("min", nil))
}

func TestBundle_Lookup(t *testing.T) {
	b, err := i18n.NewBundle("en")
	require.NoError(t, err)

	assert.Equal(t, "vi", b.Lookup("vi-VN").Lang())
	assert.Equal(t, "en", b.Lookup("en-US").Lang())
	assert.Equal(t, "vi", b.Lookup("", "vi;q=0.9, en;q=0.5").Lang())
	assert.Equal(t, "en", b.Lookup("fr").Lang())
	assert.Equal(t, "en", b.Lookup().Lang())

	_, err = i18n.NewBundle("de")
	require.ErrorIs(t, err, i18n.ErrUnknownLanguage)
}
