// Package validate provides small field validators for configuration loading.
package validate

import (
	"fmt"
)

// RequiredString validates that a string field is not empty.
func RequiredString(value, field string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// OneOf validates that a string is one of the allowed values.
func OneOf(value string, allowed []string, field string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value for %s: %s", field, value)
}
