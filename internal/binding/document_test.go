package binding_test

import (
	"testing"

	"github.com/nfrund/amantech/internal/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<!DOCTYPE html>
<html><body>
  <nav id="nav">
    <button id="menuToggle">Menu</button>
    <a id="link-about" href="#about">About</a>
    <a id="link-missing" href="#missing">Missing</a>
    <a id="link-products" href="/products">Products</a>
  </nav>
  <section id="about"><h2>About</h2></section>
</body></html>`

func parse(t *testing.T) *binding.Document {
	t.Helper()
	doc, err := binding.ParseString(fixture)
	require.NoError(t, err)
	return doc
}

func TestDocument_Queries(t *testing.T) {
	doc := parse(t)

	el, ok := doc.FindByID("about")
	require.True(t, ok)
	assert.Equal(t, "section", el.Tag())
	assert.Equal(t, "about", el.ID())

	_, ok = doc.FindByID("nope")
	assert.False(t, ok)
	_, ok = doc.FindByID("")
	assert.False(t, ok)

	anchors, err := doc.FindAll(`a[href^="#"]`)
	require.NoError(t, err)
	require.Len(t, anchors, 2)
	assert.Equal(t, "link-about", anchors[0].ID())
	assert.Equal(t, "link-missing", anchors[1].ID())

	href, ok := anchors[0].Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "#about", href)

	_, err = doc.FindAll("a[")
	assert.Error(t, err)
}

func TestDocument_ClickDispatch(t *testing.T) {
	doc := parse(t)
	toggle, _ := doc.FindByID("menuToggle")

	var calls []string
	removeFirst := doc.OnClick(toggle, func(ev *binding.ClickEvent) {
		calls = append(calls, "first")
		ev.PreventDefault()
	})
	doc.OnClick(toggle, func(ev *binding.ClickEvent) {
		calls = append(calls, "second")
	})
	assert.Equal(t, 2, doc.ListenerCount())

	// A second handle on the same node reaches the same handlers.
	ev, ok := doc.ClickByID("menuToggle")
	require.True(t, ok)
	assert.True(t, ev.DefaultPrevented())
	assert.True(t, ev.Target.Same(toggle))
	assert.Equal(t, []string{"first", "second"}, calls)

	removeFirst()
	removeFirst() // removing twice is harmless
	calls = nil
	ev = doc.Click(toggle)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, []string{"second"}, calls)
	assert.Equal(t, 1, doc.ListenerCount())

	_, ok = doc.ClickByID("missing")
	assert.False(t, ok)
}

func TestDocument_HandlerRemovingItselfDuringDispatch(t *testing.T) {
	doc := parse(t)
	toggle, _ := doc.FindByID("menuToggle")

	count := 0
	var remove func()
	remove = doc.OnClick(toggle, func(*binding.ClickEvent) {
		count++
		remove()
	})
	doc.Click(toggle)
	doc.Click(toggle)

	assert.Equal(t, 1, count)
	assert.Zero(t, doc.ListenerCount())
}

func TestDocument_Effects(t *testing.T) {
	doc := parse(t)
	about, _ := doc.FindByID("about")

	doc.ScrollIntoView(about, true)
	assert.Equal(t, []binding.ScrollEffect{{TargetID: "about", Smooth: true}}, doc.TakeEffects())
	assert.Empty(t, doc.TakeEffects(), "effects are drained")
}
