package goquery_test

import (
	"testing"

	"github.com/fwojciec/tabrip"
	"github.com/fwojciec/tabrip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tabPage = `<!DOCTYPE html>
<html>
<body>
<main>
<article>
<section><header><h1> Wish You Were Here </h1><span>by Pink Floyd</span></header></section>
<section><article><div><pre>e|--0--2--|</pre></div></article></section>
</article>
</main>
</body>
</html>`

func TestRegions_Locate(t *testing.T) {
	t.Parallel()

	t.Run("locates title and body in the catalog layout", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegions()
		content, err := r.Locate(tabPage)

		require.NoError(t, err)
		assert.Equal(t, "Wish You Were Here by Pink Floyd", content.Title)
		assert.Contains(t, content.TitleHTML, "<header>")
		assert.Contains(t, content.TitleHTML, "Wish You Were Here")
		assert.Contains(t, content.BodyHTML, "e|--0--2--|")
	})

	t.Run("falls back to generic heading and pre selectors", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Simple Tab</h1><pre>B|--1--|</pre>`

		r := goquery.NewRegions()
		content, err := r.Locate(html)

		require.NoError(t, err)
		assert.Equal(t, "Simple Tab", content.Title)
		assert.Contains(t, content.BodyHTML, "B|--1--|")
	})

	t.Run("returns ENOTFOUND when the title region is missing", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegions()
		_, err := r.Locate(`<pre>tab only</pre>`)

		require.Error(t, err)
		assert.Equal(t, tabrip.ENOTFOUND, tabrip.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when the body region is missing", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegions()
		_, err := r.Locate(`<h1>Title Without A Tab</h1><p>nothing else</p>`)

		require.Error(t, err)
		assert.Equal(t, tabrip.ENOTFOUND, tabrip.ErrorCode(err))
	})

	t.Run("custom selectors override the defaults", func(t *testing.T) {
		t.Parallel()

		html := `<div id="t">My Title</div><div id="b">My Body</div>`

		r := goquery.NewRegions(
			goquery.WithTitleSelectors("#t"),
			goquery.WithBodySelectors("#b"),
		)
		content, err := r.Locate(html)

		require.NoError(t, err)
		assert.Equal(t, "My Title", content.Title)
		assert.Contains(t, content.BodyHTML, "My Body")
	})
}
