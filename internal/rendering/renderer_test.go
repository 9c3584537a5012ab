package rendering_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRenderComponent(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	t.Run("templ", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), textComponent("<b>templ</b>"))
		require.NoError(t, err)
		assert.Equal(t, "<b>templ</b>", string(out))
	})

	t.Run("gomponents", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), html.P(gomponents.Text("node")))
		require.NoError(t, err)
		assert.Equal(t, "<p>node</p>", string(out))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		require.ErrorIs(t, err, rendering.ErrUnsupportedComponent)
	})
}

func TestRenderFragments_Concatenates(t *testing.T) {
	r := rendering.NewUniversalRenderer()
	out, err := r.RenderFragments(context.Background(), html.I(), textComponent("x"), html.B())
	require.NoError(t, err)
	assert.Equal(t, "<i></i>x<b></b>", string(out))
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := rendering.NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, r.RenderPage(c, http.StatusAccepted, html.H1(gomponents.Text("page"))))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "<h1>page</h1>", rec.Body.String())
}

func TestRenderPage_FailureWritesNothing(t *testing.T) {
	e := echo.New()
	r := rendering.NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := r.RenderPage(c, http.StatusOK, struct{}{})
	require.Error(t, err)
	assert.False(t, c.Response().Committed)
}
