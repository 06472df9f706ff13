package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/diewo77/go-assets/validation"
)

var (
	ErrClientNotFound  = errors.New("client_not_found")
	ErrDuplicateSerial = errors.New("serial_already_exists")
)

// ValidationError carries the per-field codes of a rejected write.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f, code := range e.Violations {
		fields = append(fields, f+"="+code)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
