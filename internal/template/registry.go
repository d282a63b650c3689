package template

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/lathe-dev/lathe/internal/errors"
	"github.com/lathe-dev/lathe/internal/framework"
)

// skipDirs are package-manager metadata directories excluded from file
// enumeration.
var skipDirs = map[string]bool{
	"node_modules": true,
}

// Registry scans and maintains templates under a single root directory.
type Registry struct {
	root string
	log  *slog.Logger
}

// NewRegistry returns a registry over the given templates root. The root
// does not need to exist yet; EnsureDefaults creates it.
func NewRegistry(root string) *Registry {
	return &Registry{
		root: root,
		log:  slog.Default().With("component", "registry"),
	}
}

// Root returns the templates root directory.
func (r *Registry) Root() string {
	return r.root
}

// List scans the templates root and returns every valid template in
// directory enumeration order. Directories with a missing or invalid
// manifest are skipped with a warning, never an error.
func (r *Registry) List() ([]*Template, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.New("E044").WithPath(r.root).Wrap(err)
	}

	var templates []*Template
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tmpl, err := r.load(entry.Name())
		if err != nil {
			r.log.Warn("skipping template with invalid manifest",
				"template", entry.Name(), "error", err)
			continue
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// Get returns the named template.
func (r *Registry) Get(name string) (*Template, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	tmpl, err := r.load(name)
	if err != nil {
		return nil, errors.New("E021").
			WithPath(filepath.Join(r.root, name)).
			WithDetail("Template " + strconv.Quote(name) + " could not be loaded: " + err.Error()).
			WithSuggestion("Run 'lathe templates list' to see available templates")
	}
	return tmpl, nil
}

// CreateInput carries the fields for a new template.
type CreateInput struct {
	Name        string
	Framework   string
	Description string
	Features    []string
	Author      string
}

// Create writes a new template directory: its manifest stamped with the
// current timestamp, plus baseline files from the framework skeleton.
func (r *Registry) Create(in CreateInput) (*Template, error) {
	if err := checkName(in.Name); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.root, in.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E040").WithPath(dir).Wrap(err)
	}

	features := in.Features
	if features == nil {
		features = []string{}
	}
	manifest := Manifest{
		Name:        in.Name,
		Framework:   in.Framework,
		Description: in.Description,
		Features:    features,
		Version:     "1.0.0",
		Author:      in.Author,
		CreatedAt:   time.Now().UTC(),
		Files:       []string{},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.New("E041").Wrap(err)
	}
	data = append(data, '\n')

	manifestPath := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return nil, errors.New("E041").WithPath(manifestPath).Wrap(err)
	}

	fw := framework.Resolve(in.Framework)
	for _, file := range fw.BaseFiles(features) {
		dst := filepath.Join(dir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return nil, errors.New("E040").WithPath(filepath.Dir(dst)).Wrap(err)
		}
		if err := os.WriteFile(dst, []byte(file.Content), 0644); err != nil {
			return nil, errors.New("E041").WithPath(dst).Wrap(err)
		}
	}

	r.log.Info("template created", "template", in.Name, "framework", fw.ID())
	return r.load(in.Name)
}

// builtin describes one synthesized default template.
type builtin struct {
	name        string
	framework   string
	description string
}

var builtins = []builtin{
	{"react-app", "react", "A React application powered by Vite"},
	{"vue-app", "vue", "A Vue application powered by Vite"},
	{"express-api", "express", "An Express REST API server"},
}

// EnsureDefaults synthesizes the built-in templates when the root holds zero
// valid templates. Idempotent: with any valid template present it is a no-op.
func (r *Registry) EnsureDefaults(author string) error {
	existing, err := r.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	if err := os.MkdirAll(r.root, 0755); err != nil {
		return errors.New("E040").WithPath(r.root).Wrap(err)
	}

	for _, b := range builtins {
		fw := framework.Resolve(b.framework)
		_, err := r.Create(CreateInput{
			Name:        b.name,
			Framework:   b.framework,
			Description: b.description,
			Features:    fw.DefaultFeatures(),
			Author:      author,
		})
		if err != nil {
			return err
		}
	}

	r.log.Info("built-in templates created", "root", r.root, "count", len(builtins))
	return nil
}

// load reads one template directory: manifest plus enumerated files.
func (r *Registry) load(dirName string) (*Template, error) {
	dir := filepath.Join(r.root, dirName)
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, err
	}

	if err := ValidateManifest(data); err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if m.Name != dirName {
		return nil, errors.Newf(errors.CategoryValidation,
			"manifest name %q does not match directory %q", m.Name, dirName)
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return nil, errors.Newf(errors.CategoryValidation,
			"invalid template version %q: %v", m.Version, err)
	}

	files, err := enumerateFiles(dir)
	if err != nil {
		return nil, err
	}

	tmpl := &Template{Manifest: m, Path: dir}
	tmpl.Files = files
	return tmpl, nil
}

// enumerateFiles walks a template directory and returns relative slash
// paths for every scaffold file, excluding the manifest and
// package-manager metadata directories.
func enumerateFiles(root string) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == ManifestFileName {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// checkName rejects empty names and names that would escape the
// templates root.
func checkName(name string) error {
	if name == "" {
		return errors.New("E003")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.New("E003").
			WithDetail("Got " + strconv.Quote(name)).
			WithSuggestion("Template names must not contain path separators")
	}
	return nil
}
