package validation_test

import (
	"errors"
	"testing"

	"electric-system-backend/internal/domain"
	"electric-system-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, req domain.ContactRequest) []domain.FieldError {
	t.Helper()
	v := validator.New()
	// gin binds with the `binding` tag rather than validator's default.
	v.SetTagName("binding")
	err := v.Struct(req)
	require.Error(t, err)
	return validation.FormatValidationErrors(err)
}

func TestFormatValidationErrors(t *testing.T) {
	t.Run("Should report the JSON field name with a French message", func(t *testing.T) {
		details := validate(t, domain.ContactRequest{
			Name:    "Jean Dupont",
			Email:   "jean@example.com",
			Phone:   "+352123456",
			Service: "domotique",
			Message: "court",
		})

		require.Len(t, details, 1)
		assert.Equal(t, "message", details[0].Field)
		assert.Equal(t, "Le message doit contenir au moins 10 caracteres", details[0].Message)
	})

	t.Run("Should report one issue per violating field", func(t *testing.T) {
		details := validate(t, domain.ContactRequest{
			Name:    "J",
			Email:   "not-an-email",
			Phone:   "123",
			Service: "unknown-category",
			Message: "Bonjour, je souhaite un devis.",
		})

		byField := map[string]string{}
		for _, d := range details {
			byField[d.Field] = d.Message
		}
		assert.Equal(t, "Le nom doit contenir au moins 2 caracteres", byField["name"])
		assert.Equal(t, "Veuillez entrer une adresse email valide", byField["email"])
		assert.Equal(t, "Le numero de telephone doit contenir au moins 8 chiffres", byField["phone"])
		assert.Equal(t, "Veuillez selectionner un service", byField["service"])
	})

	t.Run("Should map a non-validator error to a body issue", func(t *testing.T) {
		details := validation.FormatValidationErrors(errors.New("unexpected EOF"))
		require.Len(t, details, 1)
		assert.Equal(t, "body", details[0].Field)
	})
}
