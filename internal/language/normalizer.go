// Package language maps browser locale tags to the bare language tags the
// translation service expects.
package language

import "strings"

// Normalize returns the part of a locale tag before the first '-', so
// "en-US" becomes "en". Tags without a '-' are returned unchanged.
func Normalize(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return base
}
