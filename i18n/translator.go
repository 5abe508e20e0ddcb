package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key"); placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"invalid_type":    "invalid type, expected {expected}",
		"invalid_value":   "invalid value, expected {expected}",
		"pattern":         "does not match pattern {pattern}",
		"too_small":       "too small, minimum is {min}",
		"too_big":         "too big, maximum is {max}",
		"too_short":       "too short, expected {expected} items",
		"too_long":        "too long, expected {expected} items",
		"required":        "required property missing: {key}",
		"invalid_key":     "invalid key, expected {expected}",
		"no_match":        "matches none of the alternatives",
		"ambiguous_match": "entry satisfies several properties",
		"duplicate_key":   "duplicate key {key}",
	},
	"ja": {
		"invalid_type":    "型が不正です (期待: {expected})",
		"invalid_value":   "値が不正です (期待: {expected})",
		"pattern":         "パターン {pattern} に一致しません",
		"too_small":       "小さすぎます (最小: {min})",
		"too_big":         "大きすぎます (最大: {max})",
		"too_short":       "短すぎます (要素数: {expected})",
		"too_long":        "長すぎます (要素数: {expected})",
		"required":        "必須プロパティが不足しています: {key}",
		"invalid_key":     "キーが不正です (期待: {expected})",
		"no_match":        "いずれの選択肢にも一致しません",
		"ambiguous_match": "複数のプロパティに一致するエントリです",
		"duplicate_key":   "キー {key} が重複しています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := messages[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
