package i18n

// Translator binds an I18n to a language and namespace.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
}

// NewTranslator creates a Translator. An empty language selects the default.
func NewTranslator(i18n *I18n, language, namespace string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	return &Translator{i18n: i18n, language: language, namespace: namespace}
}

// T translates key in the translator's context.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// Tn translates key with pluralization for n.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

// Has reports whether key resolves in the translator's context.
func (t *Translator) Has(key string) bool {
	return t.i18n.Has(t.language, t.namespace, key)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}
