package resources

import "regexp"

var (
	validFirstChar = regexp.MustCompile(`^[A-Za-z_]`)
	invalidChars   = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SanitizeName turns a user supplied identifier into a valid resource name.
//
// A name not starting with a letter or an underscore is prefixed with an underscore,
// then every character outside [A-Za-z0-9_.-] is replaced by an underscore.
// Sanitizing an already valid name returns it unchanged.
func SanitizeName(name string) string {
	if !validFirstChar.MatchString(name) {
		name = "_" + name
	}
	return invalidChars.ReplaceAllString(name, "_")
}
