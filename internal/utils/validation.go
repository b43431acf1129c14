package utils

import "fmt"

// ValidateRequiredParam rejects an empty value. The error text is shown to clients
// as the detail of a 400 response.
func ValidateRequiredParam(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is missing!", name)
	}
	return nil
}
