package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"
)

// parseForm decodes a survey form definition. The canonical shape is a JSON array of
// fields; an object of the form {"fields": [...]} is accepted and unwrapped, and either
// shape may arrive encoded as a JSON string.
func parseForm(raw json.RawMessage) ([]models.FormField, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, apperrors.ErrInvalidForm
	}
	if trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return nil, apperrors.ErrInvalidForm
		}
		trimmed = bytes.TrimSpace([]byte(encoded))
		if len(trimmed) == 0 || trimmed[0] == '"' {
			return nil, apperrors.ErrInvalidForm
		}
	}

	var fields []models.FormField
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, apperrors.ErrInvalidForm
		}
	case '{':
		var wrapped struct {
			Fields *[]models.FormField `json:"fields"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil || wrapped.Fields == nil {
			return nil, apperrors.ErrInvalidForm
		}
		fields = *wrapped.Fields
	default:
		return nil, apperrors.ErrInvalidForm
	}

	if fields == nil {
		fields = []models.FormField{}
	}
	if err := validateForm(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// validateForm checks every field: id and label present, a known type, options for
// choice types and ids unique within the form
func validateForm(fields []models.FormField) error {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		pos := i + 1
		if strings.TrimSpace(f.ID) == "" {
			return formError(pos, "id is required")
		}
		if _, dup := seen[f.ID]; dup {
			return formError(pos, fmt.Sprintf("duplicate id %q", f.ID))
		}
		seen[f.ID] = struct{}{}

		if strings.TrimSpace(f.Label) == "" {
			return formError(pos, "label is required")
		}
		if !f.Type.IsValid() {
			return formError(pos, fmt.Sprintf("unsupported type %q", f.Type))
		}
		if f.Type.HasOptions() && len(f.Options) == 0 {
			return formError(pos, fmt.Sprintf("%s fields need at least one option", f.Type))
		}
	}
	return nil
}

func formError(pos int, msg string) error {
	return apperrors.NewValidationError("form", fmt.Sprintf("form field %d: %s", pos, msg))
}
