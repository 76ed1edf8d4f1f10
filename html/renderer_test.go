package html_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/html"
	"github.com/fwojciec/unitdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUnits() []*unitdoc.Unit {
	return []*unitdoc.Unit{
		{
			Name: "Alpha.Core",
			Uses: []string{"Beta.Util"},
			Classes: []*unitdoc.ComplexType{{
				Name:        "TWidget",
				Ancestor:    "TObject",
				Description: "A widget.",
				Methods: []unitdoc.Method{{
					Name:       "DoThing",
					Kind:       "procedure",
					Visibility: unitdoc.VisibilityPublic,
					Parameters: []unitdoc.Parameter{{Name: "x", Type: "Integer", Kind: "val"}},
				}},
				Properties: []unitdoc.Property{{Name: "Caption", Type: "string", Visibility: unitdoc.VisibilityPublished}},
			}},
			Interfaces: []*unitdoc.ComplexType{{Name: "IWidget", GUID: "{1234}"}},
			Types:      []unitdoc.TypeDecl{{Name: "TColor", Kind: "enum"}},
		},
		{Name: "Beta.Util"},
	}
}

func parse(t *testing.T, content string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

func TestRenderer_RenderSite(t *testing.T) {
	t.Parallel()

	t.Run("writes assets, unit pages and index in order", func(t *testing.T) {
		t.Parallel()

		w := mock.NewMemoryWriter()
		r := html.NewRenderer(html.Site{Title: "Docs", Subtitle: "API Reference"})

		err := r.RenderSite(context.Background(), sampleUnits(), w)

		require.NoError(t, err)
		assert.Equal(t, []string{"style.css", "search.js", "Alpha.Core.html", "Beta.Util.html", "index.html"}, w.Order)
		assert.Contains(t, w.Files["search.js"], "unitSearch")
		assert.Contains(t, w.Files["style.css"], ".unit-item")
	})

	t.Run("writes only assets and index for empty input", func(t *testing.T) {
		t.Parallel()

		w := mock.NewMemoryWriter()

		err := html.NewRenderer(html.Site{Title: "Docs"}).RenderSite(context.Background(), nil, w)

		require.NoError(t, err)
		assert.Equal(t, []string{"style.css", "search.js", "index.html"}, w.Order)
		doc := parse(t, w.Files["index.html"])
		assert.Equal(t, "Total Units: 0", doc.Find(".unit-count").Text())
	})

	t.Run("stops on writer error", func(t *testing.T) {
		t.Parallel()

		writeErr := errors.New("disk full")
		w := &mock.FileWriter{
			WriteFileFn: func(_ context.Context, _ string, _ []byte) error {
				return writeErr
			},
		}

		err := html.NewRenderer(html.Site{Title: "Docs"}).RenderSite(context.Background(), sampleUnits(), w)

		assert.ErrorIs(t, err, writeErr)
	})

	t.Run("output is identical across runs", func(t *testing.T) {
		t.Parallel()

		r := html.NewRenderer(html.Site{Title: "Docs", Version: "1.0"})
		first, second := mock.NewMemoryWriter(), mock.NewMemoryWriter()

		require.NoError(t, r.RenderSite(context.Background(), sampleUnits(), first))
		require.NoError(t, r.RenderSite(context.Background(), sampleUnits(), second))

		assert.Equal(t, first.Files, second.Files)
	})
}

func TestRenderer_RenderUnit(t *testing.T) {
	t.Parallel()

	units := sampleUnits()
	r := html.NewRenderer(html.Site{Title: "Docs", Subtitle: "API Reference"})

	t.Run("lists every unit in the sidebar", func(t *testing.T) {
		t.Parallel()

		data, err := r.RenderUnit(units[1], units)
		require.NoError(t, err)
		doc := parse(t, string(data))

		var hrefs []string
		doc.Find(".unit-list a.unit-item").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			hrefs = append(hrefs, href)
		})
		assert.Equal(t, []string{"Alpha.Core.html", "Beta.Util.html"}, hrefs)
		assert.Equal(t, "Beta.Util - Docs", doc.Find("title").Text())
		assert.Equal(t, "Unit Beta.Util", doc.Find("h2").Text())
	})

	t.Run("renders members with signatures and labels", func(t *testing.T) {
		t.Parallel()

		data, err := r.RenderUnit(units[0], units)
		require.NoError(t, err)
		doc := parse(t, string(data))

		var signatures, labels []string
		doc.Find(".api-item").Each(func(_ int, s *goquery.Selection) {
			signatures = append(signatures, s.Find(".api-signature").Text())
			labels = append(labels, s.Find(".visibility").Text())
		})
		assert.Equal(t, []string{"procedure DoThing(x: Integer): void", "Caption: string"}, signatures)
		assert.Equal(t, []string{"PUBLIC", "PUBLISHED"}, labels)
		assert.Equal(t, "A widget.", doc.Find(".description").Text())
		assert.Equal(t, "GUID: {1234}", doc.Find(".guid").Text())
		assert.Contains(t, doc.Find("h4").First().Text(), ": TObject")
	})

	t.Run("includes diagrams only when there is something to draw", func(t *testing.T) {
		t.Parallel()

		full, err := r.RenderUnit(units[0], units)
		require.NoError(t, err)
		empty, err := r.RenderUnit(units[1], units)
		require.NoError(t, err)

		fullDoc := parse(t, string(full))
		assert.Equal(t, 2, fullDoc.Find(".mermaid").Length())
		assert.Contains(t, fullDoc.Find(".mermaid").First().Text(), "Alpha_Core --> Beta_Util[\"Beta.Util\"]")
		assert.Contains(t, fullDoc.Find(".mermaid").Last().Text(), "TObject[\"TObject\"] <|-- TWidget")
		assert.Equal(t, 0, parse(t, string(empty)).Find(".mermaid").Length())
	})

	t.Run("renders other types", func(t *testing.T) {
		t.Parallel()

		data, err := r.RenderUnit(units[0], units)
		require.NoError(t, err)

		assert.Contains(t, string(data), "<b>TColor</b>: enum")
	})

	t.Run("escapes markup in names and descriptions", func(t *testing.T) {
		t.Parallel()

		u := &unitdoc.Unit{
			Name: "Evil",
			Records: []*unitdoc.ComplexType{{
				Name:        "TList<T>",
				Description: "<script>alert(1)</script>",
			}},
		}

		data, err := r.RenderUnit(u, []*unitdoc.Unit{u})
		require.NoError(t, err)

		assert.NotContains(t, string(data), "<script>alert(1)</script>")
		assert.Contains(t, string(data), "TList&lt;T&gt;")
		doc := parse(t, string(data))
		assert.Equal(t, "<script>alert(1)</script>", doc.Find(".description").Text())
	})
}

func TestRenderer_RenderIndex(t *testing.T) {
	t.Parallel()

	t.Run("shows title, unit count and version", func(t *testing.T) {
		t.Parallel()

		r := html.NewRenderer(html.Site{Title: "Docs", Subtitle: "Sub", Version: "2.1"})

		data, err := r.RenderIndex(sampleUnits())
		require.NoError(t, err)
		doc := parse(t, string(data))

		assert.Equal(t, "Docs", doc.Find("title").Text())
		assert.Equal(t, "Welcome to Docs", doc.Find("h2").Text())
		assert.Equal(t, "Sub", doc.Find(".sidebar-header p").Text())
		assert.Equal(t, "Total Units: 2", doc.Find(".unit-count").Text())
		assert.Contains(t, string(data), "Generated for version 2.1.")
	})

	t.Run("omits version line when unset", func(t *testing.T) {
		t.Parallel()

		data, err := html.NewRenderer(html.Site{Title: "Docs"}).RenderIndex(nil)

		require.NoError(t, err)
		assert.NotContains(t, string(data), "Generated for version")
	})
}

func TestPageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "System.Classes.html", html.PageName(&unitdoc.Unit{Name: "System.Classes"}))
}
