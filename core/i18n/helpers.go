package i18n

import (
	"fmt"
	"strings"
)

// ReplacePlaceholders substitutes %{name} markers with values from
// placeholders. Unknown markers are left unchanged.
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 {
		return template
	}
	result := template
	for key, value := range placeholders {
		result = strings.ReplaceAll(result, "%{"+key+"}", fmt.Sprintf("%v", value))
	}
	return result
}

// MatchLanguage maps a locale such as "es_AR.UTF-8" or "en-US" onto one of
// the available languages by its base tag. It returns the first available
// language when nothing matches.
func MatchLanguage(locale string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	base := strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexAny(base, ".@"); idx >= 0 {
		base = base[:idx]
	}
	if idx := strings.IndexAny(base, "-_"); idx >= 0 {
		base = base[:idx]
	}
	for _, lang := range available {
		if strings.EqualFold(lang, base) {
			return lang
		}
	}
	return available[0]
}
