package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseRecord decodes a JSON request body into T and checks it against T's
// constraints. It never touches the store. Every bad field is reported: a
// field with the wrong JSON type gets a type message, and the rest of the
// record is still validated.
func ParseRecord[T any](raw []byte) (*T, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, NewValidationError("body", "request body is required")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, decodeError(err)
	}

	var record T
	typeErrs := make(map[string]string)
	for {
		err := json.Unmarshal(raw, &record)
		if err == nil {
			break
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, decodeError(err)
		}
		if _, ok := body[typeErr.Field]; !ok {
			return nil, decodeError(err)
		}

		// Drop the offending key and decode again to find the next mismatch.
		typeErrs[typeErr.Field] = typeMessage(typeErr)
		delete(body, typeErr.Field)
		if raw, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("re-encode body: %w", err)
		}
		var zero T
		record = zero
	}

	err := ValidateRecord(&record)
	if len(typeErrs) == 0 {
		if err != nil {
			return nil, err
		}
		return &record, nil
	}

	ve := &ValidationError{Fields: typeErrs}
	if err != nil {
		fieldErrs, ok := AsValidationError(err)
		if !ok {
			return nil, err
		}
		for field, msg := range fieldErrs.Fields {
			if _, seen := ve.Fields[field]; !seen {
				ve.Fields[field] = msg
			}
		}
	}
	return nil, ve
}

// ValidateRecord runs the struct constraints of record and converts failures
// into a *ValidationError keyed by JSON field name.
func ValidateRecord(record any) error {
	err := Validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate record: %w", err)
	}

	ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fe.Field()] = fieldMessage(fe)
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return NewValidationError("body", "must be a JSON object")
		}
		return NewValidationError(typeErr.Field, typeMessage(typeErr))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewValidationError("body", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	}
	return NewValidationError("body", err.Error())
}

func typeMessage(typeErr *json.UnmarshalTypeError) string {
	return fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)
}
