package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/domain"
	"github.com/nfrund/amantech/internal/view"
	"github.com/stretchr/testify/assert"
)

var testStore = sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))

// setupTestContext returns a context with the session middleware applied.
// Cookies from a previous response, if any, are sent along.
func setupTestContext(prev ...*httptest.ResponseRecorder) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, p := range prev {
		for _, ck := range p.Result().Cookies() {
			req.AddCookie(ck)
		}
	}
	rec := httptest.NewRecorder()

	var c echo.Context
	capture := func(ctx echo.Context) error { c = ctx; return nil }
	_ = session.Middleware(testStore)(capture)(echo.New().NewContext(req, rec))
	return c, rec
}

func TestFlashMessages(t *testing.T) {
	tests := []struct {
		name        string
		set         func(echo.Context)
		wantSuccess []string
		wantError   []string
	}{
		{
			name:        "success notice",
			set:         func(c echo.Context) { view.SetFlashSuccess(c, domain.MsgInquiryAccepted) },
			wantSuccess: []string{domain.MsgInquiryAccepted},
		},
		{
			name:      "error notice",
			set:       func(c echo.Context) { view.SetFlashError(c, domain.MsgInquiryRejected) },
			wantError: []string{domain.MsgInquiryRejected},
		},
		{
			name: "nothing set",
			set:  func(echo.Context) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := setupTestContext()
			tt.set(c)

			flashes := view.GetFlashData(c)
			assert.Equal(t, tt.wantSuccess, nilIfEmpty(flashes.Success))
			assert.Equal(t, tt.wantError, nilIfEmpty(flashes.Error))
			assert.True(t, view.GetFlashData(c).Empty(), "notices are read once")
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestFlashMessages_SurviveRedirect(t *testing.T) {
	c, first := setupTestContext()
	view.SetFlashError(c, domain.MsgInquiryRejected)

	next, _ := setupTestContext(first)
	assert.Equal(t, []string{domain.MsgInquiryRejected}, view.GetFlashData(next).Error)
}

func TestFlashData_Empty(t *testing.T) {
	assert.True(t, view.FlashData{}.Empty())
	assert.False(t, view.FlashData{Error: []string{"x"}}.Empty())
}

func TestFlashMessages_Multiple(t *testing.T) {
	c, _ := setupTestContext()

	view.SetFlashSuccess(c, "first")
	view.SetFlashSuccess(c, "second")
	view.SetFlashError(c, "oops")

	flashes := view.GetFlashData(c)
	assert.Equal(t, []string{"first", "second"}, flashes.Success)
	assert.Equal(t, []string{"oops"}, flashes.Error)
}
