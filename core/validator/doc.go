// Package validator checks structs against rules declared in `validate` tags.
//
// Rules are separated by semicolons and take comma-separated parameters after
// a colon:
//
//	type RegisterData struct {
//		Name     string `json:"name" validate:"required;min:3;max:100"`
//		Email    string `json:"email" validate:"required;email;max:150"`
//		Password string `json:"password" validate:"required;min:6;max:200"`
//	}
//
//	if err := validator.ValidateStruct(&data); err != nil {
//		var verrs validator.ValidationErrors
//		errors.As(err, &verrs)
//	}
//
// Fields are reported by their JSON name. Nested structs, pointers to structs
// and slices of structs are walked; slice elements are reported as
// "items[0].quantity".
//
// Every failure carries a translation key under "validation." and the values
// needed to render it, so callers can localize messages through core/i18n.
package validator
