package errs

import "strings"

// FieldsError lists the required form fields that were left empty.
type FieldsError struct {
	Missing []string
}

func (e *FieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *FieldsError) Is(target error) bool {
	return target == ErrValidation
}

// RequireFields returns a FieldsError naming every empty value, in the order
// given, or nil when all are present.
func RequireFields(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &FieldsError{Missing: missing}
}

type Field struct {
	Name  string
	Value string
}
