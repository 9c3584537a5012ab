package components_test

import (
	"testing"

	"github.com/nfrund/amantech/internal/binding"
	"github.com/nfrund/amantech/internal/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const navPage = `<html><body>
<nav id="navigation">
  <button id="menuToggle">☰</button>
  <a id="nav-about" href="#about">About</a>
  <a id="nav-services" href="#services">Services</a>
  <a id="nav-ghost" href="#ghost">Ghost</a>
  <a id="nav-top" href="#">Top</a>
  <a id="nav-products" href="/products">All products</a>
</nav>
<section id="about"></section>
<section id="services"></section>
</body></html>`

func newDoc(t *testing.T, page string) *binding.Document {
	t.Helper()
	doc, err := binding.ParseString(page)
	require.NoError(t, err)
	return doc
}

func click(t *testing.T, doc *binding.Document, id string) *binding.ClickEvent {
	t.Helper()
	ev, ok := doc.ClickByID(id)
	require.True(t, ok, "element %q should exist", id)
	return ev
}

func TestNavigation_Toggle(t *testing.T) {
	doc := newDoc(t, navPage)
	nav := components.NewNavigation()
	require.NoError(t, nav.Activate(doc))

	assert.False(t, nav.MenuOpen(), "menu starts closed")

	expected := false
	for i := 0; i < 5; i++ {
		click(t, doc, components.MenuToggleID)
		expected = !expected
		assert.Equal(t, expected, nav.MenuOpen(), "toggle %d flips exactly once", i+1)
	}
	assert.Empty(t, doc.TakeEffects(), "toggling never scrolls")
}

func TestNavigation_AnchorClicks(t *testing.T) {
	t.Run("valid anchor scrolls and closes the menu", func(t *testing.T) {
		doc := newDoc(t, navPage)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))

		click(t, doc, components.MenuToggleID)
		require.True(t, nav.MenuOpen())

		ev := click(t, doc, "nav-services")

		assert.True(t, ev.DefaultPrevented())
		assert.False(t, nav.MenuOpen())
		assert.Equal(t, []binding.ScrollEffect{{TargetID: "services", Smooth: true}}, doc.TakeEffects())
	})

	t.Run("valid anchor with menu closed keeps it closed", func(t *testing.T) {
		doc := newDoc(t, navPage)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))

		click(t, doc, "nav-about")
		assert.False(t, nav.MenuOpen())
	})

	t.Run("unknown target is a no-op", func(t *testing.T) {
		doc := newDoc(t, navPage)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))
		click(t, doc, components.MenuToggleID)

		ev := click(t, doc, "nav-ghost")
		assert.True(t, ev.DefaultPrevented())
		assert.True(t, nav.MenuOpen(), "menu state is untouched")
		assert.Empty(t, doc.TakeEffects())

		click(t, doc, "nav-top")
		assert.True(t, nav.MenuOpen())
		assert.Empty(t, doc.TakeEffects())
	})

	t.Run("links leaving the page are not intercepted", func(t *testing.T) {
		doc := newDoc(t, navPage)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))

		ev := click(t, doc, "nav-products")
		assert.False(t, ev.DefaultPrevented())
	})
}

func TestNavigation_Lifecycle(t *testing.T) {
	t.Run("nil binding", func(t *testing.T) {
		assert.ErrorIs(t, components.NewNavigation().Activate(nil), components.ErrNoBinding)
	})

	t.Run("deactivate removes every listener", func(t *testing.T) {
		doc := newDoc(t, navPage)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))
		assert.True(t, nav.Active())
		assert.Equal(t, 5, doc.ListenerCount(), "toggle plus four in-page links")

		nav.Deactivate()
		assert.False(t, nav.Active())
		assert.Zero(t, doc.ListenerCount())

		click(t, doc, components.MenuToggleID)
		assert.False(t, nav.MenuOpen())
	})

	t.Run("re-activation does not double listeners", func(t *testing.T) {
		doc := newDoc(t, navPage)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))
		require.NoError(t, nav.Activate(doc))
		assert.Equal(t, 5, doc.ListenerCount())

		click(t, doc, components.MenuToggleID)
		assert.True(t, nav.MenuOpen())
	})

	t.Run("missing toggle control is tolerated", func(t *testing.T) {
		doc := newDoc(t, `<html><body><a id="a" href="#x">x</a><div id="x"></div></body></html>`)
		nav := components.NewNavigation()
		require.NoError(t, nav.Activate(doc))
		assert.Equal(t, 1, doc.ListenerCount())
	})
}
