package scaffold

import (
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/lathe-dev/lathe/internal/errors"
)

// packageManagers are the accepted package manager identifiers.
var packageManagers = map[string]bool{
	"npm":  true,
	"yarn": true,
	"pnpm": true,
}

// nameRE matches valid project names: lowercase, starting with a letter or
// digit, continuing with letters, digits, hyphens, dots, underscores, or
// tildes.
var nameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9\-._~]*$`)

// maxNameLength caps project names at the npm registry limit.
const maxNameLength = 214

// Request describes one project generation.
type Request struct {
	// Name is the project name. It must satisfy package-name rules.
	Name string `json:"name"`

	// Framework selects the skeleton (react, vue, express, vanilla,
	// generic). Unknown values scaffold the generic skeleton.
	Framework string `json:"framework"`

	// Features are applied in order after scaffolding.
	Features []string `json:"features"`

	// PackageManager is npm, yarn, or pnpm. Empty defaults to npm.
	PackageManager string `json:"packageManager"`

	// Template optionally pins a registry template by name instead of
	// resolving one by framework.
	Template string `json:"template,omitempty"`

	// Description is substituted into scaffolded files and the manifest.
	// Empty substitutes the empty string.
	Description string `json:"description,omitempty"`

	// TargetDir is the parent directory that receives the project
	// directory named after the project.
	TargetDir string `json:"-"`
}

// Normalize fills defaulted fields in place.
func (r *Request) Normalize() {
	if r.Features == nil {
		r.Features = []string{}
	}
	if r.PackageManager == "" {
		r.PackageManager = "npm"
	}
}

// Validate checks the request before any filesystem work happens.
func (r *Request) Validate() error {
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if r.Framework == "" {
		return errors.New("E002")
	}
	if r.PackageManager != "" && !packageManagers[r.PackageManager] {
		return errors.New("E004").
			WithDetail("Got " + strconv.Quote(r.PackageManager)).
			WithSuggestion("Use one of: npm, yarn, pnpm")
	}
	if r.TargetDir == "" {
		return errors.New("E005")
	}
	return nil
}

// ValidateName checks a project name against package-name rules: non-empty,
// at most 214 characters, lowercase, starting with a letter or digit, with
// only letters, digits, and the characters - . _ ~ after that.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("E001").WithDetail("Project name is empty")
	}
	if len(name) > maxNameLength {
		return errors.New("E001").
			WithDetail("Project name exceeds " + strconv.Itoa(maxNameLength) + " characters")
	}
	if !nameRE.MatchString(name) {
		return errors.New("E001").
			WithDetail("Got " + strconv.Quote(name)).
			WithSuggestion("Use lowercase letters, digits, and the characters - . _ ~, starting with a letter or digit")
	}
	return nil
}

// ProjectPath returns the directory the generated project will occupy.
func (r *Request) ProjectPath() string {
	return filepath.Join(r.TargetDir, r.Name)
}
