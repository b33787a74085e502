package macro

import (
	"io"
	"text/template"

	"github.com/fwojciec/snipdoc"
)

// Names under which the macros are visible to templates.
const (
	VersionsVar     = "versions"
	LoadSnippetFunc = "load_snippet"
	StripTagsFunc   = "strip_tags"
)

// Env is the template environment of a documentation build.
// Pages read versions as {{ .versions.drift }} and call
// {{ load_snippet "setup" "lib/a.json" "lib/b.json" 4 }}.
type Env struct {
	Versions snipdoc.VersionMap
	Renderer *Renderer
	Stripper snipdoc.MarkupStripper
}

// NewEnv creates a new Env.
func NewEnv(versions snipdoc.VersionMap, renderer *Renderer, stripper snipdoc.MarkupStripper) *Env {
	return &Env{
		Versions: versions,
		Renderer: renderer,
		Stripper: stripper,
	}
}

// Variables returns the data passed to templates.
func (e *Env) Variables() map[string]any {
	return map[string]any{
		VersionsVar: e.Versions,
	}
}

// Funcs returns the macros registered with templates.
func (e *Env) Funcs() template.FuncMap {
	return template.FuncMap{
		LoadSnippetFunc: e.LoadSnippet,
		StripTagsFunc:   e.StripTags,
	}
}

// LoadSnippet renders a snippet. String arguments are candidate files in
// priority order; an optional trailing integer is the indent.
func (e *Env) LoadSnippet(name string, args ...any) (string, error) {
	req := snipdoc.SnippetRequest{Name: name}
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			req.Paths = append(req.Paths, v)
		case int:
			if i != len(args)-1 {
				return "", snipdoc.Errorf(snipdoc.EINVALID, "%s %q: indent must be the last argument", LoadSnippetFunc, name)
			}
			req.Indent = v
		default:
			return "", snipdoc.Errorf(snipdoc.EINVALID, "%s %q: unexpected argument %v of type %T", LoadSnippetFunc, name, arg, arg)
		}
	}
	return e.Renderer.Render(req)
}

// StripTags returns the text content of an HTML fragment.
func (e *Env) StripTags(html string) string {
	return e.Stripper.Strip(html)
}

// Execute expands the template text, named name in errors, into w.
// Unknown version keys and failing macros abort the expansion.
func (e *Env) Execute(w io.Writer, name, text string) error {
	tmpl, err := template.New(name).
		Funcs(e.Funcs()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return snipdoc.Wrapf(err, snipdoc.EINVALID, "%v", err)
	}

	if err := tmpl.Execute(w, e.Variables()); err != nil {
		code, msg := snipdoc.ErrorCode(err), snipdoc.ErrorMessage(err)
		if code == snipdoc.EINTERNAL {
			code, msg = snipdoc.EINVALID, err.Error()
		}
		return snipdoc.Wrapf(err, code, "%s: %s", name, msg)
	}
	return nil
}
