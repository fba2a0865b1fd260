// Package i18n provides a small immutable translation catalog with
// namespaced keys, default-language fallback and %{name} placeholders.
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("es"),
//		i18n.WithTranslations("es", "notify", map[string]any{
//			"cart": map[string]any{"added": "%{name} se añadió al carrito."},
//		}),
//	)
//	tr := i18n.NewTranslator(catalog, "en", "notify")
//	tr.T("cart.added", i18n.M{"name": "Phone"})
//
// Lookups that miss in both the requested and the default language return the
// key unchanged, so callers may pass literal text where a key is expected.
package i18n
