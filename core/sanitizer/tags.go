package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var ErrNotStruct = errors.New("sanitizer: must pass a pointer to struct")

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"upper":       ToUpper,
		"trim_lower":  TrimToLower,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"no_control":  RemoveControlChars,
		"email":       NormalizeEmail,

		"text": func(s string) string {
			return RemoveExtraWhitespace(RemoveControlChars(s))
		},
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies the sanitizers named in each field's tag.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStruct
	}
	sanitizeStructRecursive(rv.Elem())
	return nil
}

func sanitizeStructRecursive(rv reflect.Value) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(apply(field.String(), tag))
			}
		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch {
			case elem.Kind() == reflect.String && tag != "":
				elem.SetString(apply(elem.String(), tag))
			case elem.Kind() == reflect.Struct:
				sanitizeStructRecursive(elem)
			}
		case reflect.Struct:
			sanitizeStructRecursive(field)
		case reflect.Slice:
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := range field.Len() {
					elem := field.Index(j)
					elem.SetString(apply(elem.String(), tag))
				}
			}
		}
	}
}

func apply(value, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			if n, err := strconv.Atoi(limit); err == nil && n > 0 {
				value = MaxLength(value, n)
			}
			continue
		}
		if fn, ok := registry[name]; ok {
			value = fn(value)
		}
	}
	return value
}
