package template

import (
	"path/filepath"
	"time"
)

// ManifestFileName is the manifest file every template directory must contain.
const ManifestFileName = "template.json"

// Manifest mirrors the template.json document.
type Manifest struct {
	// Name is the template's unique name. It must match the directory name.
	Name string `json:"name"`

	// Framework is the framework identifier the template targets.
	Framework string `json:"framework"`

	// Description is a short human-readable summary.
	Description string `json:"description"`

	// Features is the declared default feature list. Declared, not enforced:
	// generation requests choose their own features.
	Features []string `json:"features"`

	// Version is the template version.
	Version string `json:"version"`

	// Author is who created the template.
	Author string `json:"author,omitempty"`

	// CreatedAt is when the template was created.
	CreatedAt time.Time `json:"createdAt"`

	// Files is kept empty in the persisted manifest; the real file set is
	// enumerated from disk at listing time.
	Files []string `json:"files"`
}

// Template is a loaded catalog entry: its manifest plus on-disk location.
// The embedded Files field holds the enumerated scaffold files (relative,
// slash-separated paths) rather than the manifest's empty list.
type Template struct {
	Manifest

	// Path is the template root directory.
	Path string `json:"path"`
}

// ManifestPath returns the path to the template's manifest file.
func (t *Template) ManifestPath() string {
	return filepath.Join(t.Path, ManifestFileName)
}
