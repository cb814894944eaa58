// Package i18n localizes menu labels with go-i18n message files.
package i18n

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Message is an alias for i18n.Message so callers need not import go-i18n.
type Message = i18n.Message

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return bundle
}

// InitI18N loads message files whose language comes from the file name,
// e.g. active.es.toml.
func InitI18N(messageFilePaths []string, languages ...string) error {
	bundle := newBundle()
	for _, path := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return fmt.Errorf("load message file %s: %w", path, err)
		}
	}
	install(bundle, languages)
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile, languages ...string) error {
	bundle := newBundle()
	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return fmt.Errorf("parse message file %s: %w", messageFile.Name, err)
		}
	}
	install(bundle, languages)
	return nil
}

func install(bundle *i18n.Bundle, languages []string) {
	if len(languages) == 0 {
		languages = []string{language.English.String()}
	}
	mu.Lock()
	defer mu.Unlock()
	i = &I18N{localizer: i18n.NewLocalizer(bundle, languages...), bundle: bundle}
}

func SetLanguage(lang language.Tag) {
	mu.Lock()
	defer mu.Unlock()
	if i == nil {
		return
	}
	i = &I18N{localizer: i18n.NewLocalizer(i.bundle, lang.String()), bundle: i.bundle}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", code, err)
	}
	SetLanguage(lang)
	return nil
}

func current() *I18N {
	mu.RLock()
	defer mu.RUnlock()
	return i
}

// GetString returns the translation of key, or key itself when there is
// none.
func GetString(key string) string {
	return GetStringOr(key, key)
}

// GetStringOr returns the translation of key, or fallback.
func GetStringOr(key, fallback string) string {
	loc := current()
	if loc == nil {
		return fallback
	}
	msg, err := loc.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return fallback
	}
	return msg
}

func GetStringWithData(key string, templateData map[string]interface{}) string {
	loc := current()
	if loc == nil {
		return key
	}
	msg, err := loc.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		return key
	}
	return msg
}

func GetPluralString(key string, count int) string {
	loc := current()
	if loc == nil {
		return key
	}
	msg, err := loc.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:   key,
		PluralCount: count,
	})
	if err != nil {
		return key
	}
	return msg
}

// Localize translates message, falling back to its Other text.
//
//	i18n.Localize(&i18n.Message{ID: "menu_play", Other: "Play"}, nil)
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	loc := current()
	if loc == nil {
		return message.Other
	}

	msg, err := loc.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	})
	if err != nil {
		return message.Other
	}
	return msg
}
