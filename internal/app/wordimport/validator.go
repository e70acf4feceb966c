package wordimport

import (
	"fmt"
	"strings"
)

// Validate checks the fields the importer relies on. Length limits are left
// to the dictionary service.
func Validate(e Entry) error {
	if strings.TrimSpace(e.En) == "" {
		return fmt.Errorf("en is empty")
	}
	if strings.TrimSpace(e.Ja) == "" {
		return fmt.Errorf("ja of %q is empty", e.En)
	}
	return nil
}
