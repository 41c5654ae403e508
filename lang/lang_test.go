package lang

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	SetLanguage("en")
	assert.Equal(t, "en", Current())
	assert.Equal(t, "Status", T("Status"))

	SetLanguage("zh-CN")
	assert.Equal(t, "zh-CN", Current())
	assert.Equal(t, "状态", T("Status"))
	assert.Equal(t, "正在克隆 %s 到 %s", T("Cloning %s into %s"))

	// 没有翻译时返回 ID
	assert.Equal(t, "no such message", T("no such message"))
}

func TestSetLanguageFallback(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	SetLanguage("not a tag!")
	assert.Equal(t, "en", Current())

	SetLanguage("zh")
	assert.Equal(t, "zh-CN", Current())
}

func TestLocaleFilesAreFlat(t *testing.T) {
	entries, err := localeFS.ReadDir("locales")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		require.NoError(t, err)
		var messages map[string]string
		require.NoError(t, json.Unmarshal(data, &messages), entry.Name())
		assert.NotEmpty(t, messages)
	}
}
