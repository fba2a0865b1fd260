// Package sanitizer normalizes user input before it is validated or sent.
//
// Struct fields opt in through `sanitize` tags holding a comma-separated
// list of sanitizers applied in order:
//
//	type LoginCredentials struct {
//		Email    string `sanitize:"email"`
//		Password string
//	}
//
//	_ = sanitizer.SanitizeStruct(&creds)
//
// String, *string and []string fields are rewritten in place; nested structs
// are always walked. "max:N" truncates to N runes.
package sanitizer
