package framework

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"react", "react"},
		{"vue", "vue"},
		{"express", "express"},
		{"vanilla", "vanilla"},
		{"generic", "generic"},
		{"svelte", "generic"},
		{"", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f := Resolve(tt.id)
			if f.ID() != tt.want {
				t.Errorf("Resolve(%q).ID() = %q, want %q", tt.id, f.ID(), tt.want)
			}
		})
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("react") {
		t.Error("react should be known")
	}
	if IsKnown("svelte") {
		t.Error("svelte should not be known")
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	want := []string{"react", "vue", "express", "vanilla", "generic"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], id)
		}
	}
}

func filePaths(files []File) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}

func hasPath(files []File, path string) bool {
	for _, f := range files {
		if f.Path == path {
			return true
		}
	}
	return false
}

func TestReactBaseFiles(t *testing.T) {
	files := Resolve("react").BaseFiles(nil)

	for _, path := range []string{"src/App.jsx", "src/main.jsx", "src/index.css", "index.html", "vite.config.js"} {
		if !hasPath(files, path) {
			t.Errorf("missing %q in %v", path, filePaths(files))
		}
	}
	if hasPath(files, "tsconfig.json") {
		t.Error("tsconfig.json should not be generated without the typescript feature")
	}
}

func TestReactBaseFiles_TypeScript(t *testing.T) {
	files := Resolve("react").BaseFiles([]string{"typescript"})

	for _, path := range []string{"src/App.tsx", "src/main.tsx", "vite.config.ts", "tsconfig.json"} {
		if !hasPath(files, path) {
			t.Errorf("missing %q in %v", path, filePaths(files))
		}
	}
	if hasPath(files, "src/App.jsx") {
		t.Error("jsx sources should be swapped out under the typescript feature")
	}

	// main must import the matching extension.
	for _, f := range files {
		if f.Path == "src/main.tsx" && !strings.Contains(f.Content, "./App.tsx") {
			t.Error("src/main.tsx should import ./App.tsx")
		}
		if f.Path == "index.html" && !strings.Contains(f.Content, "/src/main.tsx") {
			t.Error("index.html should reference /src/main.tsx")
		}
	}
}

func TestVueBaseFiles(t *testing.T) {
	files := Resolve("vue").BaseFiles(nil)

	want := []string{"src/App.vue", "src/main.js", "index.html"}
	if len(files) != len(want) {
		t.Fatalf("file set = %v, want %v", filePaths(files), want)
	}
	for _, path := range want {
		if !hasPath(files, path) {
			t.Errorf("missing %q in %v", path, filePaths(files))
		}
	}

	ts := Resolve("vue").BaseFiles([]string{"typescript"})
	if !hasPath(ts, "src/main.ts") {
		t.Errorf("typescript feature should produce src/main.ts, got %v", filePaths(ts))
	}
}

func TestVueAppAvoidsTokenCollision(t *testing.T) {
	// Vue interpolation uses spaced moustaches; the project tokens must not
	// appear inside the template section where Vue would evaluate them.
	if !strings.Contains(vueApp, "'{{projectName}}'") {
		t.Error("App.vue should bind the project name token in script")
	}
	if !strings.Contains(vueApp, "{{ title }}") {
		t.Error("App.vue template should interpolate the bound title")
	}
}

func TestExpressBaseFiles(t *testing.T) {
	files := Resolve("express").BaseFiles(nil)

	if len(files) != 1 || files[0].Path != "src/index.js" {
		t.Fatalf("file set = %v, want [src/index.js]", filePaths(files))
	}

	entry := files[0].Content
	for _, marker := range []string{
		"express.json()",
		"express.static(",
		"'/health'",
		"process.uptime()",
		"process.env.PORT || 3000",
		"timestamp",
	} {
		if !strings.Contains(entry, marker) {
			t.Errorf("entry file missing %q", marker)
		}
	}

	ts := Resolve("express").BaseFiles([]string{"typescript"})
	if !hasPath(ts, "tsconfig.json") {
		t.Errorf("typescript feature should add tsconfig.json, got %v", filePaths(ts))
	}
}

func TestVanillaBaseFiles(t *testing.T) {
	files := Resolve("vanilla").BaseFiles(nil)

	want := []string{"index.html", "style.css", "script.js"}
	if len(files) != len(want) {
		t.Fatalf("file set = %v, want %v", filePaths(files), want)
	}
	for _, path := range want {
		if !hasPath(files, path) {
			t.Errorf("missing %q in %v", path, filePaths(files))
		}
	}

	for _, f := range files {
		if f.Path == "script.js" && !strings.Contains(f.Content, "addEventListener('click'") {
			t.Error("script.js should implement the click counter")
		}
	}
}

func TestGenericBaseFiles(t *testing.T) {
	files := Resolve("generic").BaseFiles([]string{"eslint", "docker"})

	if len(files) != 1 || files[0].Path != "README.md" {
		t.Fatalf("file set = %v, want [README.md]", filePaths(files))
	}
	readme := files[0].Content
	if !strings.Contains(readme, "- eslint") || !strings.Contains(readme, "- docker") {
		t.Errorf("README should list requested features:\n%s", readme)
	}

	empty := Resolve("generic").BaseFiles(nil)
	if !strings.Contains(empty[0].Content, "No optional features selected.") {
		t.Error("README should note when no features are selected")
	}
}

func TestBaseFilesCarryTokens(t *testing.T) {
	for _, f := range All() {
		t.Run(f.ID(), func(t *testing.T) {
			files := f.BaseFiles(nil)
			if len(files) == 0 {
				t.Fatal("no base files generated")
			}

			var all strings.Builder
			for _, file := range files {
				all.WriteString(file.Content)
			}
			if !strings.Contains(all.String(), "{{projectName}}") {
				t.Error("skeleton should embed the project name token")
			}
			if !strings.Contains(all.String(), "{{projectDescription}}") {
				t.Error("skeleton should embed the project description token")
			}
		})
	}
}
