package scaffold

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lathe-dev/lathe/internal/errors"
	"github.com/lathe-dev/lathe/internal/template"
)

// Substitution tokens recognized inside template files. Replacement is
// literal, global, and case-sensitive.
const (
	TokenProjectName        = "{{projectName}}"
	TokenProjectDescription = "{{projectDescription}}"
)

// Details carries the substitution values for one scaffold run.
type Details struct {
	Name        string
	Description string
}

// Materializer copies template file trees into target directories with
// token substitution.
type Materializer struct {
	registry *template.Registry
	log      *slog.Logger
}

// NewMaterializer returns a materializer backed by the given registry.
func NewMaterializer(reg *template.Registry) *Materializer {
	return &Materializer{
		registry: reg,
		log:      slog.Default().With("component", "materializer"),
	}
}

// Resolve picks the template for a framework: the first whose framework
// field matches, else the first listed, else a notfound error when the
// registry holds no templates at all.
func (m *Materializer) Resolve(frameworkID string) (*template.Template, error) {
	templates, err := m.registry.List()
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, errors.New("E020").
			WithPath(m.registry.Root()).
			WithSuggestion("Run 'lathe templates list' to initialize the built-in templates")
	}
	for _, tmpl := range templates {
		if tmpl.Framework == frameworkID {
			return tmpl, nil
		}
	}
	m.log.Debug("no template matches framework, falling back to first listed",
		"framework", frameworkID, "fallback", templates[0].Name)
	return templates[0], nil
}

// Substitute replaces both project tokens in content. Substitution treats
// content as text; binary blobs inside a template would be corrupted.
func Substitute(content string, details Details) string {
	content = strings.ReplaceAll(content, TokenProjectName, details.Name)
	content = strings.ReplaceAll(content, TokenProjectDescription, details.Description)
	return content
}

// Scaffold copies every enumerated template file into targetPath,
// substituting both tokens. The first I/O error aborts the copy; files
// already written stay on disk. Returns the relative paths written.
func (m *Materializer) Scaffold(tmpl *template.Template, targetPath string, details Details) ([]string, error) {
	written := make([]string, 0, len(tmpl.Files))
	for _, rel := range tmpl.Files {
		src := filepath.Join(tmpl.Path, filepath.FromSlash(rel))
		data, err := os.ReadFile(src)
		if err != nil {
			return written, errors.New("E042").WithPath(src).Wrap(err)
		}

		dst := filepath.Join(targetPath, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return written, errors.New("E040").WithPath(filepath.Dir(dst)).Wrap(err)
		}

		content := Substitute(string(data), details)
		if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
			return written, errors.New("E041").WithPath(dst).Wrap(err)
		}
		written = append(written, rel)
	}

	m.log.Debug("template materialized",
		"template", tmpl.Name, "target", targetPath, "files", len(written))
	return written, nil
}
