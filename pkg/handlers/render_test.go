package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLayout = `{{define "layouts/base.html"}}<title>{{if .Settings}}{{.Settings.SiteName}}{{else}}fallback{{end}}</title>{{template "content" .}}{{end}}`

// renderFixture sets up a workspace with one page template and points the
// working directory at it for the duration of the test.
func renderFixture(t *testing.T) *template.Template {
	t.Helper()

	dir := t.TempDir()
	pages := filepath.Join(dir, "views", "pages")
	require.NoError(t, os.MkdirAll(pages, 0o755))
	page := `{{define "content"}}<main>{{.Body}}</main>{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(pages, "sample.html"), []byte(page), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	return template.Must(template.New("").Parse(testLayout))
}

func newRenderEvent() (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	e.Response = rec
	return e, rec
}

func TestRenderPage_MergesRequestScopeSettings(t *testing.T) {
	tmpl := renderFixture(t)

	e, rec := newRenderEvent()
	e.Set("SiteSettings", &domain.SiteSettings{SiteName: "DenModa"})

	err := RenderPage(tmpl, e, "layouts/base.html", "sample.html", map[string]any{"Body": "hello"})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "<title>DenModa</title>")
	assert.Contains(t, body, "<main>hello</main>")
}

func TestRenderPage_HandlerSettingsWin(t *testing.T) {
	tmpl := renderFixture(t)

	e, rec := newRenderEvent()
	e.Set("SiteSettings", &domain.SiteSettings{SiteName: "injected"})

	data := map[string]any{
		"Body":     "hello",
		"Settings": &domain.SiteSettings{SiteName: "explicit"},
	}
	require.NoError(t, RenderPage(tmpl, e, "layouts/base.html", "sample.html", data))
	assert.Contains(t, rec.Body.String(), "<title>explicit</title>")
}

func TestRenderPage_HtmxNavigationSkipsLayout(t *testing.T) {
	tmpl := renderFixture(t)

	e, rec := newRenderEvent()
	e.Request.Header.Set("HX-Request", "true")
	e.Request.Header.Set("HX-Target", "main-content")
	e.Set("SiteSettings", &domain.SiteSettings{SiteName: "DenModa"})

	err := RenderPage(tmpl, e, "layouts/base.html", "sample.html", map[string]any{"Body": "hello"})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "<main>hello</main>")
	assert.NotContains(t, body, "<title>", "partial swap must not re-render the layout")
}
