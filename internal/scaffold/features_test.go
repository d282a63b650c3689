package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testProject(t *testing.T, fw string) Project {
	t.Helper()
	return Project{Path: t.TempDir(), Name: "demo-app", Framework: fw}
}

func readProjectFile(t *testing.T, p Project, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(p.Path, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestComposer_UnknownFeatureIsNoOp(t *testing.T) {
	c := NewComposer()
	p := testProject(t, "react")

	if err := c.Apply("quantum-linting", p); err != nil {
		t.Fatalf("unknown feature should be a no-op, got: %v", err)
	}

	entries, err := os.ReadDir(p.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("unknown feature must not write files, found %d entries", len(entries))
	}
}

func TestComposer_Register(t *testing.T) {
	c := NewComposer()
	p := testProject(t, "vanilla")

	called := false
	c.Register("custom", func(Project) error {
		called = true
		return nil
	})
	if !c.Handles("custom") {
		t.Error("registered feature should be handled")
	}
	if err := c.Apply("custom", p); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("custom handler was not invoked")
	}
}

func TestComposer_ApplyAll_Order(t *testing.T) {
	c := NewComposer()
	p := testProject(t, "vanilla")

	var order []string
	for _, id := range []string{"first", "second", "third"} {
		id := id
		c.Register(id, func(Project) error {
			order = append(order, id)
			return nil
		})
	}

	if err := c.ApplyAll([]string{"third", "first", "second"}, p); err != nil {
		t.Fatal(err)
	}
	want := "third,first,second"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("application order = %s, want %s", got, want)
	}
}

func TestESLint(t *testing.T) {
	p := testProject(t, "express")
	if err := applyESLint(p); err != nil {
		t.Fatal(err)
	}

	content := readProjectFile(t, p, ".eslintrc.json")
	if !strings.Contains(content, "eslint:recommended") {
		t.Error("config should extend eslint:recommended")
	}
	if strings.Contains(content, "plugin:react/recommended") {
		t.Error("non-react projects should not get the React preset")
	}
}

func TestESLint_ReactAugmentation(t *testing.T) {
	p := testProject(t, "react")
	if err := applyESLint(p); err != nil {
		t.Fatal(err)
	}

	content := readProjectFile(t, p, ".eslintrc.json")
	for _, marker := range []string{"plugin:react/recommended", `"react"`, `"jsx": true`, `"version": "detect"`} {
		if !strings.Contains(content, marker) {
			t.Errorf("react config missing %s:\n%s", marker, content)
		}
	}
}

func TestPrettier(t *testing.T) {
	p := testProject(t, "vue")
	if err := applyPrettier(p); err != nil {
		t.Fatal(err)
	}

	var cfg struct {
		Semi        bool `json:"semi"`
		SingleQuote bool `json:"singleQuote"`
		PrintWidth  int  `json:"printWidth"`
		TabWidth    int  `json:"tabWidth"`
	}
	if err := json.Unmarshal([]byte(readProjectFile(t, p, ".prettierrc.json")), &cfg); err != nil {
		t.Fatal(err)
	}
	if !cfg.Semi || !cfg.SingleQuote || cfg.PrintWidth != 80 || cfg.TabWidth != 2 {
		t.Errorf("unexpected style: %+v", cfg)
	}
}

func TestJest(t *testing.T) {
	p := testProject(t, "express")
	if err := applyJest(p); err != nil {
		t.Fatal(err)
	}
	content := readProjectFile(t, p, "jest.config.json")
	if !strings.Contains(content, `"testEnvironment": "node"`) {
		t.Errorf("non-react projects should test in node:\n%s", content)
	}
	if strings.Contains(content, "setupFilesAfterEnv") {
		t.Error("non-react projects should not reference a setup file")
	}
}

func TestJest_React(t *testing.T) {
	p := testProject(t, "react")
	if err := applyJest(p); err != nil {
		t.Fatal(err)
	}
	content := readProjectFile(t, p, "jest.config.json")
	if !strings.Contains(content, `"testEnvironment": "jsdom"`) {
		t.Error("react projects should test in jsdom")
	}
	if !strings.Contains(content, "src/setupTests.js") {
		t.Error("react projects should reference the setup file")
	}
}

func TestTailwind_ConfigAndInjection(t *testing.T) {
	p := testProject(t, "react")

	cssPath := filepath.Join(p.Path, "src", "index.css")
	if err := os.MkdirAll(filepath.Dir(cssPath), 0755); err != nil {
		t.Fatal(err)
	}
	original := "body { margin: 0; }\n"
	if err := os.WriteFile(cssPath, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	if err := applyTailwind(p); err != nil {
		t.Fatal(err)
	}

	cfg := readProjectFile(t, p, "tailwind.config.js")
	if !strings.Contains(cfg, "./index.html") || !strings.Contains(cfg, "./src/**/*") {
		t.Errorf("config should scan index.html and src:\n%s", cfg)
	}

	css := readProjectFile(t, p, "src/index.css")
	if !strings.HasPrefix(css, "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n") {
		t.Errorf("directives must precede prior content:\n%s", css)
	}
	if !strings.Contains(css, original) {
		t.Error("prior content must survive the injection")
	}
}

func TestTailwind_MissingCSSIsSilent(t *testing.T) {
	p := testProject(t, "express")
	if err := applyTailwind(p); err != nil {
		t.Fatalf("missing src/index.css should be skipped: %v", err)
	}
	if _, err := os.Stat(filepath.Join(p.Path, "tailwind.config.js")); err != nil {
		t.Error("config should be written even without a stylesheet")
	}
	if _, err := os.Stat(filepath.Join(p.Path, "src", "index.css")); !os.IsNotExist(err) {
		t.Error("stylesheet must not be created from nothing")
	}
}

func TestTailwind_ReapplyDuplicatesDirectives(t *testing.T) {
	// Re-application prepends again. This is the observed behavior, kept
	// deliberately; the assertion documents it.
	p := testProject(t, "react")

	cssPath := filepath.Join(p.Path, "src", "index.css")
	if err := os.MkdirAll(filepath.Dir(cssPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cssPath, []byte("body {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := applyTailwind(p); err != nil {
		t.Fatal(err)
	}
	if err := applyTailwind(p); err != nil {
		t.Fatal(err)
	}

	css := readProjectFile(t, p, "src/index.css")
	if got := strings.Count(css, "@tailwind base;"); got != 2 {
		t.Errorf("directive count after two applications = %d, want 2", got)
	}
}

func TestDocker(t *testing.T) {
	p := testProject(t, "express")
	if err := applyDocker(p); err != nil {
		t.Fatal(err)
	}

	df := readProjectFile(t, p, "Dockerfile")
	for _, marker := range []string{"FROM node:", "RUN npm install", "COPY . .", "EXPOSE 3000", `CMD ["npm", "start"]`} {
		if !strings.Contains(df, marker) {
			t.Errorf("Dockerfile missing %q", marker)
		}
	}

	di := readProjectFile(t, p, ".dockerignore")
	if !strings.Contains(di, "node_modules") {
		t.Error(".dockerignore should exclude node_modules")
	}
}
