package notify

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/validator"
)

// ValidationMessage renders the failures in err through n's catalog, joined
// with "; ". It returns "" when err carries no validation failures.
func ValidationMessage(n Notifier, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ""
	}

	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		values := i18n.M{}
		for k, v := range e.TranslationValues {
			values[k] = v
		}
		values["field"] = fieldLabel(n, e.Field)
		parts = append(parts, n.T(e.TranslationKey, values))
	}
	return strings.Join(parts, "; ")
}

// fieldLabel maps "items[1].quantity" to the label of "quantity", falling
// back to the raw name.
func fieldLabel(n Notifier, path string) string {
	name := path
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	key := "fields." + name
	if label := n.T(key); label != key {
		return label
	}
	return name
}
