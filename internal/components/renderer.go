package components

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"voiceflow-dashboard/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded stylesheet tree rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time, so Sub cannot fail here.
		panic(err)
	}
	return sub
}

// Document is a page wrapped in the HTML document layout.
type Document struct {
	Title string
	Page  Page
}

// Renderer executes the embedded partials. It holds no mutable state and is
// safe for concurrent use.
type Renderer struct {
	templates     *template.Template
	assetVersions map[string]string
}

func NewRenderer() (*Renderer, error) {
	versions, err := hashAssets(StaticFS(), "/static")
	if err != nil {
		return nil, fmt.Errorf("failed to hash static assets: %w", err)
	}

	r := &Renderer{assetVersions: versions}

	templates, err := utils.LoadTemplates(templateFS, "templates", utils.GetTemplateFuncs(r.assetVersion))
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"base.html", "page", "navbar", "navlink"} {
		if templates.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}

	r.templates = templates
	return r, nil
}

func (r *Renderer) RenderNavigationBar(w io.Writer) error {
	return r.execute(w, "navbar", NavigationBar())
}

func (r *Renderer) RenderHomePage(w io.Writer) error {
	return r.RenderPage(w, HomePage())
}

func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	return r.execute(w, "page", page)
}

// RenderDocument writes a complete HTML document for doc.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	return r.execute(w, "base.html", doc)
}

// execute renders into a buffer first so a failed render never leaves a
// partial response on w.
func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) assetVersion(p string) (string, error) {
	version, ok := r.assetVersions[p]
	if !ok {
		return "", fmt.Errorf("unknown asset %s", p)
	}
	return version, nil
}

func hashAssets(fsys fs.FS, prefix string) (map[string]string, error) {
	versions := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		versions[path.Join(prefix, p)] = hex.EncodeToString(sum[:])[:12]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return versions, nil
}
