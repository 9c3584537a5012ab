package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInbound(t *testing.T) {
	t.Run("click", func(t *testing.T) {
		in, err := ParseInbound([]byte(`{"HEADERS":{"HX-Request":"true","HX-Trigger":"menuToggle","HX-Trigger-Name":null,"HX-Target":"menuToggle","HX-Current-URL":"http://localhost/"}}`))
		require.NoError(t, err)
		assert.Equal(t, "menuToggle", in.Trigger)
		assert.True(t, in.Form.IsZero())
	})

	t.Run("form", func(t *testing.T) {
		in, err := ParseInbound([]byte(`{"name":"Ana","email":"a@b.c","company":"","phone":"","message":"hi","HEADERS":{"HX-Trigger":"contact-form"}}`))
		require.NoError(t, err)
		assert.Equal(t, "contact-form", in.Trigger)
		assert.Equal(t, "Ana", in.Form.Name)
		assert.Equal(t, "hi", in.Form.Message)
	})

	t.Run("no trigger", func(t *testing.T) {
		_, err := ParseInbound([]byte(`{"HEADERS":{"HX-Trigger":null}}`))
		assert.ErrorIs(t, err, ErrNoTrigger)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParseInbound([]byte(`nope`))
		assert.Error(t, err)
	})
}
