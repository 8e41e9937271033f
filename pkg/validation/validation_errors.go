package validation

import (
	"fmt"
	"strings"

	"electric-system-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// fieldNames maps struct field names to the JSON names the frontend knows,
// so error details can be matched back to form inputs.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Phone":   "phone",
	"Service": "service",
	"Message": "message",
}

// fieldMessages holds the user-facing message per field and violated tag.
// Wording matches the frontend's own schema messages so both layers report
// identically.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Le nom est obligatoire",
		"min":      "Le nom doit contenir au moins 2 caracteres",
		"max":      "Le nom ne peut pas depasser 100 caracteres",
	},
	"email": {
		"required": "L'adresse email est obligatoire",
		"email":    "Veuillez entrer une adresse email valide",
	},
	"phone": {
		"required": "Le numero de telephone est obligatoire",
		"min":      "Le numero de telephone doit contenir au moins 8 chiffres",
		"max":      "Le numero de telephone ne peut pas depasser 20 caracteres",
	},
	"service": {
		"required": "Veuillez selectionner un service",
		"oneof":    "Veuillez selectionner un service",
	},
	"message": {
		"required": "Le message est obligatoire",
		"min":      "Le message doit contenir au moins 10 caracteres",
		"max":      "Le message ne peut pas depasser 2000 caracteres",
	},
}

// FormatValidationErrors converts a binding error into the per-field issue
// list returned in 400 responses.
func FormatValidationErrors(err error) []domain.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Malformed JSON or a type mismatch: no field to point at.
		return []domain.FieldError{{Field: "body", Message: "Corps de requete invalide"}}
	}

	details := make([]domain.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := jsonFieldName(e.Field())
		details = append(details, domain.FieldError{
			Field:   field,
			Message: messageFor(field, e),
		})
	}
	return details
}

func jsonFieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}

func messageFor(field string, e validator.FieldError) string {
	if byTag, ok := fieldMessages[field]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}

	// Fallback for tags without a dedicated message.
	switch e.Tag() {
	case "required":
		return "Ce champ est obligatoire"
	case "min":
		return fmt.Sprintf("Minimum %s caracteres", e.Param())
	case "max":
		return fmt.Sprintf("Maximum %s caracteres", e.Param())
	default:
		return fmt.Sprintf("Validation echouee (%s)", e.Tag())
	}
}
