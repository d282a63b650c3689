package scaffold

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/lathe-dev/lathe/internal/errors"
)

// ManifestFileName is the generated project manifest file.
const ManifestFileName = "package.json"

// ProjectManifest is the generated package.json document. Top-level order
// is fixed by the struct; map keys marshal sorted.
type ProjectManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Private         bool              `json:"private"`
}

// frameworkScripts are the base script sets per framework. Frameworks not
// listed get a single start script.
var frameworkScripts = map[string]map[string]string{
	"react": {
		"dev":     "vite",
		"build":   "vite build",
		"preview": "vite preview",
	},
	"vue": {
		"dev":     "vite",
		"build":   "vite build",
		"preview": "vite preview",
	},
	"express": {
		"start": "node src/index.js",
		"dev":   "node --watch src/index.js",
	},
}

// frameworkDeps are the base runtime dependencies per framework.
var frameworkDeps = map[string]map[string]string{
	"react": {
		"react":     "^18.3.1",
		"react-dom": "^18.3.1",
	},
	"vue": {
		"vue": "^3.4.21",
	},
	"express": {
		"express": "^4.19.2",
	},
}

// Tool package versions added per feature.
const (
	viteVersion          = "^5.2.0"
	vitePluginReact      = "^4.2.1"
	vitePluginVue        = "^5.0.4"
	typescriptVersion    = "^5.4.5"
	typesReactVersion    = "^18.2.66"
	typesReactDOMVersion = "^18.2.22"
	eslintVersion        = "^8.57.0"
	eslintPluginReactVer = "^7.34.1"
	prettierVersion      = "^3.2.5"
	jestVersion          = "^29.7.0"
	jestEnvJSDOMVersion  = "^29.7.0"
	tailwindVersion      = "^3.4.1"
)

// BuildManifest derives the project manifest purely from the request's
// framework and feature list. No filesystem work happens here.
func BuildManifest(req Request) ProjectManifest {
	scripts := map[string]string{}
	if base, ok := frameworkScripts[req.Framework]; ok {
		maps.Copy(scripts, base)
	} else {
		scripts["start"] = "node index.js"
	}
	if slices.Contains(req.Features, FeatureESLint) {
		scripts["lint"] = "eslint ."
		scripts["lint-fix"] = "eslint . --fix"
	}
	if slices.Contains(req.Features, FeatureJest) {
		scripts["test"] = "jest"
		scripts["test-watch"] = "jest --watch"
	}

	deps := map[string]string{}
	if base, ok := frameworkDeps[req.Framework]; ok {
		maps.Copy(deps, base)
	}
	if slices.Contains(req.Features, FeatureTailwind) {
		deps["tailwindcss"] = tailwindVersion
	}

	devDeps := map[string]string{}
	switch req.Framework {
	case "react":
		devDeps["vite"] = viteVersion
		devDeps["@vitejs/plugin-react"] = vitePluginReact
	case "vue":
		devDeps["vite"] = viteVersion
		devDeps["@vitejs/plugin-vue"] = vitePluginVue
	}
	if slices.Contains(req.Features, "typescript") {
		devDeps["typescript"] = typescriptVersion
		if req.Framework == "react" {
			devDeps["@types/react"] = typesReactVersion
			devDeps["@types/react-dom"] = typesReactDOMVersion
		}
	}
	if slices.Contains(req.Features, FeatureESLint) {
		devDeps["eslint"] = eslintVersion
		if req.Framework == "react" {
			devDeps["eslint-plugin-react"] = eslintPluginReactVer
		}
	}
	if slices.Contains(req.Features, FeaturePrettier) {
		devDeps["prettier"] = prettierVersion
	}
	if slices.Contains(req.Features, FeatureJest) {
		devDeps["jest"] = jestVersion
		if req.Framework == "react" {
			devDeps["jest-environment-jsdom"] = jestEnvJSDOMVersion
		}
	}

	description := req.Description
	if description == "" {
		description = "A " + req.Framework + " project scaffolded with Lathe"
	}

	return ProjectManifest{
		Name:            req.Name,
		Version:         "1.0.0",
		Description:     description,
		Main:            "index.js",
		Scripts:         scripts,
		Dependencies:    deps,
		DevDependencies: devDeps,
		Private:         true,
	}
}

// WriteManifest writes the manifest as package.json under projectPath.
func WriteManifest(m ProjectManifest, projectPath string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.New("E041").Wrap(err)
	}
	data = append(data, '\n')

	path := filepath.Join(projectPath, ManifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E041").WithPath(path).Wrap(err)
	}
	return nil
}
