// Package envexpr expands ${env.KEY} references in configuration values.
package envexpr

import (
	"os"
	"regexp"
	"strings"
)

const prefix = "${env."

var expr = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]*)\}`)

// Expand replaces every ${env.KEY} with the value of KEY, or "" when unset.
// Malformed references are left as they are.
func Expand(value string) string {
	if !strings.Contains(value, prefix) {
		return value
	}
	return expr.ReplaceAllStringFunc(value, func(match string) string {
		key := match[len(prefix) : len(match)-1]
		return os.Getenv(key)
	})
}

// ExpandAll expands each of the supplied values in place.
func ExpandAll(values ...*string) {
	for _, value := range values {
		if value != nil {
			*value = Expand(*value)
		}
	}
}
