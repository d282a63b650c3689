package framework

import "strings"

// generic is the fallback for unrecognized frameworks. It produces a README
// describing the requested feature list.
type generic struct{}

func (g *generic) ID() string          { return "generic" }
func (g *generic) DisplayName() string { return "Generic" }

func (g *generic) DefaultFeatures() []string { return nil }

func (g *generic) BaseFiles(features []string) []File {
	var b strings.Builder
	b.WriteString("# {{projectName}}\n\n")
	b.WriteString("{{projectDescription}}\n\n")
	b.WriteString("## Features\n\n")
	if len(features) == 0 {
		b.WriteString("No optional features selected.\n")
	} else {
		for _, f := range features {
			b.WriteString("- " + f + "\n")
		}
	}
	b.WriteString("\n## Getting Started\n\n")
	b.WriteString("This project was scaffolded without a framework preset.\n")
	b.WriteString("Add your own sources and tooling as needed.\n")

	return []File{
		{Path: "README.md", Content: b.String()},
	}
}
