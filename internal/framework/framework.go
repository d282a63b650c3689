// Package framework defines the baseline file skeletons for each supported
// project framework.
//
// Each framework implements the Framework interface and produces an ordered
// set of files forming a minimal working project. File contents carry the
// substitution tokens {{projectName}} and {{projectDescription}}, which are
// replaced at scaffold time, not here.
//
// Unknown framework identifiers resolve to the generic framework rather
// than an error, so callers never branch on a miss.
package framework

import "slices"

// File is one file in a framework's baseline skeleton.
type File struct {
	// Path is the file path relative to the project root.
	Path string

	// Content is the full textual content, tokens included.
	Content string
}

// Framework produces the baseline file set for one supported project kind.
type Framework interface {
	// ID is the canonical identifier (react, vue, express, vanilla, generic).
	ID() string

	// DisplayName is the human-readable name shown in prompts.
	DisplayName() string

	// BaseFiles returns the skeleton for this framework. The features slice
	// adjusts the output: the typescript feature swaps source extensions
	// and adds compiler options where the framework supports it.
	BaseFiles(features []string) []File

	// DefaultFeatures is the feature list declared by the built-in template
	// for this framework.
	DefaultFeatures() []string
}

// FeatureTypeScript is the feature identifier that switches skeletons to
// TypeScript sources.
const FeatureTypeScript = "typescript"

// known lists the registered frameworks in display order. The generic
// framework stays last so prompts show it as the fallback choice.
var known = []Framework{
	&react{},
	&vue{},
	&express{},
	&vanilla{},
	&generic{},
}

// Resolve returns the framework for the given identifier. Unrecognized
// identifiers resolve to the generic framework.
func Resolve(id string) Framework {
	for _, f := range known {
		if f.ID() == id {
			return f
		}
	}
	return &generic{}
}

// IsKnown reports whether id names a registered framework.
func IsKnown(id string) bool {
	for _, f := range known {
		if f.ID() == id {
			return true
		}
	}
	return false
}

// IDs returns the registered framework identifiers in display order.
func IDs() []string {
	ids := make([]string, 0, len(known))
	for _, f := range known {
		ids = append(ids, f.ID())
	}
	return ids
}

// All returns the registered frameworks in display order.
func All() []Framework {
	return slices.Clone(known)
}

// hasFeature reports whether the feature list contains id.
func hasFeature(features []string, id string) bool {
	return slices.Contains(features, id)
}
