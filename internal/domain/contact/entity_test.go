//go:build unit

package contact_test

import (
	"errors"
	"testing"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	valid := contact.Form{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Talleres",
		Body:    "¿Hay cupos en abril?",
	}

	t.Run("optional phone", func(t *testing.T) {
		msg, err := contact.NewMessage(valid)
		require.NoError(t, err)
		assert.Equal(t, "", msg.Fields()[contact.FieldPhone])
		assert.Equal(t, "Talleres", msg.Fields()[contact.FieldSubject])
	})

	t.Run("missing subject", func(t *testing.T) {
		form := valid
		form.Subject = ""

		_, err := contact.NewMessage(form)
		var fieldsErr *errs.FieldsError
		require.True(t, errors.As(err, &fieldsErr))
		assert.Equal(t, []string{contact.FieldSubject}, fieldsErr.Missing)
	})

	t.Run("reset clears the form", func(t *testing.T) {
		form := valid
		form.Reset()
		assert.Equal(t, contact.Form{}, form)
	})
}
