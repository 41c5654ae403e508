// Package lang 提供命令行文案的多语言支持
// 文案 ID 即英文原文，找不到翻译时直接返回 ID
package lang

import (
	"embed"
	"encoding/json"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/tdoc/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   = language.English
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err == nil {
		for _, entry := range entries {
			_, _ = bundle.LoadMessageFileFS(localeFS, path.Join("locales", entry.Name()))
		}
	}

	SetLanguage(config.GetConfigWithDefault(config.KeyLang, "en"))
}

// SetLanguage 切换当前语言，无法识别的语言回退到英文
func SetLanguage(tag string) {
	supported := bundle.LanguageTags()
	parsed, err := language.Parse(tag)
	if err != nil {
		parsed = language.English
	}
	_, index, _ := language.NewMatcher(supported).Match(parsed)
	matched := supported[index]

	mu.Lock()
	defer mu.Unlock()
	current = matched
	localizer = i18n.NewLocalizer(bundle, matched.String())
}

// Current 返回当前语言
func Current() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.String()
}

// T 翻译文案
func T(id string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		return id
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
