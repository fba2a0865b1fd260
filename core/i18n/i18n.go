package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// DefaultLang is the fallback language of the storefront catalog.
const DefaultLang = "es"

var (
	ErrEmptyLanguage  = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
)

// M maps placeholder names to values.
type M map[string]any

// I18n holds flattened translations. It is immutable after New and safe for
// concurrent use.
type I18n struct {
	// "lang:namespace:key.path" -> text
	translations map[string]string
	defaultLang  string
	languages    []string
	onMissing    func(lang, namespace, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	seen := map[string]bool{i.defaultLang: true}
	langs := []string{}
	for _, l := range i.languages {
		if !seen[l] {
			seen[l] = true
			langs = append(langs, l)
		}
	}
	slices.Sort(langs)
	i.languages = append([]string{i.defaultLang}, langs...)

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithMissingKeyHandler registers a callback for keys missing in both the
// requested and the default language.
func WithMissingKeyHandler(fn func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.onMissing = fn
		return nil
	}
}

// WithTranslations loads a possibly nested translation map for a language and
// namespace. Nested keys are joined with dots.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		for key, value := range flatten(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		if !slices.Contains(i.languages, lang) {
			i.languages = append(i.languages, lang)
		}
		return nil
	}
}

// T returns the translation for key, falling back to the default language and
// finally to the key itself.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if text, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return replaceMerged(text, placeholders)
	}
	if lang != i.defaultLang {
		if text, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return replaceMerged(text, placeholders)
		}
	}
	if i.onMissing != nil {
		i.onMissing(lang, namespace, key)
	}
	return key
}

// Has reports whether key resolves in lang or the default language.
func (i *I18n) Has(lang, namespace, key string) bool {
	if _, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return true
	}
	_, ok := i.translations[buildKey(i.defaultLang, namespace, key)]
	return ok
}

// Tn picks "<key>.one" for n == 1 and "<key>.other" otherwise, injecting
// %{count}. Both Spanish and English share this rule.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	form := "other"
	if n == 1 {
		form = "one"
	}
	merged := M{"count": n}
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	full := key + "." + form
	if !i.Has(lang, namespace, full) {
		full = key + ".other"
	}
	if !i.Has(lang, namespace, full) {
		return i.T(lang, namespace, key, merged)
	}
	return i.T(lang, namespace, full, merged)
}

// Languages returns the default language first followed by the others sorted.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for sub, text := range v {
				out[full+"."+sub] = text
			}
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
	return out
}

func replaceMerged(template string, placeholders []M) string {
	if len(placeholders) == 0 {
		return template
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}
