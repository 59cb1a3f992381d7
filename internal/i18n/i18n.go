// Package i18n provides the localized strings shown by the UI.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Language is a UI language choice. The string value is what gets
// persisted under the selectedLanguage key.
type Language string

const (
	System     Language = "System"
	English    Language = "English"
	Chinese    Language = "中文"
	Vietnamese Language = "Tiếng Việt"
)

// Languages returns the selectable languages in menu order.
func Languages() []Language {
	return []Language{System, English, Chinese, Vietnamese}
}

var aliases = map[string]Language{
	"":           System,
	"system":     System,
	"auto":       System,
	"english":    English,
	"chinese":    Chinese,
	"vietnamese": Vietnamese,
}

// ParseLanguage accepts a persisted value, an English name or a BCP 47
// code such as "zh" or "vi-VN". Unknown input yields System.
func ParseLanguage(s string) Language {
	s = strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	if l, ok := aliases[strings.ToLower(s)]; ok {
		return l
	}
	if tag, err := language.Parse(strings.ReplaceAll(s, "_", "-")); err == nil {
		return match(tag)
	}
	return System
}

var supported = []language.Tag{language.English, language.Chinese, language.Vietnamese}

var matcher = language.NewMatcher(supported)

func match(tag language.Tag) Language {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return []Language{English, Chinese, Vietnamese}[idx]
}

// Resolve turns System into a concrete language using the locale
// environment. Other languages are returned unchanged.
func Resolve(l Language) Language {
	if l != System {
		if _, ok := catalog[l]; ok {
			return l
		}
		return English
	}
	return FromEnv(os.Getenv)
}

// FromEnv picks a language from LC_ALL, LC_MESSAGES or LANG, in that order.
func FromEnv(getenv func(string) string) Language {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// "zh_CN.UTF-8@pinyin" -> "zh-CN"
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			continue
		}
		return match(tag)
	}
	return English
}

// Lookup returns the string for key in lang. Missing translations fall
// back to English, and unknown keys to the key itself.
func Lookup(key string, lang Language) string {
	if s, ok := catalog[Resolve(lang)][key]; ok {
		return s
	}
	if s, ok := catalog[English][key]; ok {
		return s
	}
	return key
}

// LevelScore formats the "Level {level} • {score}/{total}" header.
func LevelScore(lang Language, level, score, total int) string {
	return fmt.Sprintf(Lookup(KeyLevelScore, lang), level, score, total)
}

// Level formats "Level {n}".
func Level(lang Language, n int) string {
	return fmt.Sprintf(Lookup(KeyLevel, lang), n)
}

// DisplayName is the name of l shown in the language menu, in lang.
func DisplayName(l, lang Language) string {
	switch l {
	case English:
		return Lookup(KeyEnglish, lang)
	case Chinese:
		return Lookup(KeyChinese, lang)
	case Vietnamese:
		return Lookup(KeyVietnamese, lang)
	default:
		return Lookup(KeySystem, lang)
	}
}
