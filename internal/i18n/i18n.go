// Package i18n holds the static dictionaries for user-facing gatekeeper
// texts. The engine and the clarification builder only ever deal in keys;
// the UI picks a language here.
package i18n

// Lang identifies a supported dictionary.
type Lang string

const (
	EN Lang = "en"
	RU Lang = "ru"
)

// DefaultLang is used when a request does not name a language.
const DefaultLang = EN

var dictionaries = map[Lang]map[string]string{
	EN: en,
	RU: ru,
}

// Lookup resolves a message key in the given language, falling back to the
// default language and finally to the key itself so that a missing
// translation never blanks the UI.
func Lookup(lang Lang, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if msg, ok := dict[key]; ok {
			return msg
		}
	}
	if msg, ok := dictionaries[DefaultLang][key]; ok {
		return msg
	}
	return key
}

// Supported reports whether the language has a dictionary.
func Supported(lang Lang) bool {
	_, ok := dictionaries[lang]
	return ok
}

// Translate maps every key through Lookup, preserving order.
func Translate(lang Lang, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, Lookup(lang, key))
	}
	return out
}
