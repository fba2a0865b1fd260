package validator

import (
	"fmt"
	"net/mail"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// ValidatorFunc builds the rule for one field.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"email":    emailValidator,
		"positive": positiveValidator,
		"in":       inValidator,
	}
)

// RegisterValidator adds a custom rule to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates v, which must be a pointer to a struct. It returns
// ValidationErrors when any rule fails.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStruct
	}

	var errs ValidationErrors
	validateStructRecursive(rv.Elem(), "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStructRecursive(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := range rv.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := fieldName(sf)
		if prefix != "" {
			path = prefix + "." + path
		}
		field := rv.Field(i)

		if tag != "" {
			target := field
			if field.Kind() == reflect.Pointer && !field.IsNil() {
				target = field.Elem()
			}
			validateField(path, target, tag, errs)
		}

		// Walk nested values.
		switch {
		case field.Kind() == reflect.Struct:
			validateStructRecursive(field, path, errs)
		case field.Kind() == reflect.Pointer && !field.IsNil() && field.Elem().Kind() == reflect.Struct:
			validateStructRecursive(field.Elem(), path, errs)
		case field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.Struct:
			for j := range field.Len() {
				validateStructRecursive(field.Index(j), fmt.Sprintf("%s[%d]", path, j), errs)
			}
		}
	}
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func validateField(path string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for raw := range strings.SplitSeq(tag, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, paramStr, _ := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			for p := range strings.SplitSeq(paramStr, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		fn, ok := registry[name]
		if !ok {
			continue
		}
		rule := fn(path, field, params)
		if !rule.Check() {
			rule.Error.Rule = name
			errs.Add(rule.Error)
		}
	}
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			case reflect.Invalid:
				return false
			default:
				return !value.IsZero()
			}
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// minValidator checks string length in runes, collection length, or numeric
// value depending on the field kind.
func minValidator(field string, value reflect.Value, params []string) Rule {
	return boundRule(field, value, params, "min", func(n, bound float64) bool { return n >= bound })
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	return boundRule(field, value, params, "max", func(n, bound float64) bool { return n <= bound })
}

func boundRule(field string, value reflect.Value, params []string, name string, ok func(n, bound float64) bool) Rule {
	if len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}
	bound, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return Rule{Check: func() bool { return true }}
	}

	key := "validation." + name
	message := fmt.Sprintf("must be at least %s", params[0])
	if name == "max" {
		message = fmt.Sprintf("must be at most %s", params[0])
	}

	var measure func() float64
	switch value.Kind() {
	case reflect.String:
		key += "_length"
		message += " characters"
		measure = func() float64 { return float64(utf8.RuneCountInString(value.String())) }
	case reflect.Slice, reflect.Map, reflect.Array:
		key += "_items"
		message += " items"
		measure = func() float64 { return float64(value.Len()) }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		measure = func() float64 { return float64(value.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		measure = func() float64 { return float64(value.Uint()) }
	case reflect.Float32, reflect.Float64:
		measure = value.Float
	default:
		return Rule{Check: func() bool { return true }}
	}

	return Rule{
		Check: func() bool { return ok(measure(), bound) },
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: map[string]any{"field": field, name: params[0]},
		},
	}
}

// emailValidator accepts empty strings; combine with required.
func emailValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String || value.String() == "" {
				return true
			}
			addr, err := mail.ParseAddress(value.String())
			return err == nil && addr.Address == value.String() && strings.Contains(addr.Address, ".")
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func positiveValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return value.Int() > 0
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				return value.Uint() > 0
			case reflect.Float32, reflect.Float64:
				return value.Float() > 0
			default:
				return true
			}
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be positive",
			TranslationKey:    "validation.positive",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// inValidator accepts empty strings; combine with required.
func inValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String || value.String() == "" {
				return true
			}
			return slices.Contains(params, value.String())
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be one of " + strings.Join(params, ", "),
			TranslationKey:    "validation.in",
			TranslationValues: map[string]any{"field": field, "values": strings.Join(params, ", ")},
		},
	}
}
