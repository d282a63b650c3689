package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/lathe-dev/lathe/internal/errors"
	"github.com/lathe-dev/lathe/internal/template"
)

// newTestRegistry builds a registry with one template per framework used in
// these tests.
func newTestRegistry(t *testing.T) *template.Registry {
	t.Helper()
	reg := template.NewRegistry(t.TempDir())
	for _, in := range []template.CreateInput{
		{Name: "vanilla-app", Framework: "vanilla", Description: "Static site"},
		{Name: "react-app", Framework: "react", Description: "React app"},
	} {
		if _, err := reg.Create(in); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func listTree(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(files)
	return files
}

func TestGenerate_VanillaEndToEnd(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))
	target := t.TempDir()

	result, err := gen.Generate(context.Background(), Request{
		Name:      "demo-app",
		Framework: "vanilla",
		TargetDir: target,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	want := []string{"index.html", "package.json", "script.js", "style.css"}
	got := listTree(t, result.ProjectPath)
	if !slices.Equal(got, want) {
		t.Errorf("file set = %v, want %v", got, want)
	}

	// Every scaffolded file carries the substituted name and no tokens.
	for _, rel := range []string{"index.html", "script.js", "style.css"} {
		data, err := os.ReadFile(filepath.Join(result.ProjectPath, rel))
		if err != nil {
			t.Fatal(err)
		}
		content := string(data)
		if !strings.Contains(content, "demo-app") {
			t.Errorf("%s should contain the project name", rel)
		}
		if strings.Contains(content, TokenProjectName) || strings.Contains(content, TokenProjectDescription) {
			t.Errorf("%s still contains a substitution token", rel)
		}
	}

	if result.Manifest.Scripts["start"] != "node index.js" {
		t.Errorf("start script = %q, want %q", result.Manifest.Scripts["start"], "node index.js")
	}
	if len(result.Manifest.Dependencies) != 0 {
		t.Errorf("dependencies = %v, want empty", result.Manifest.Dependencies)
	}
	if result.Template != "vanilla-app" {
		t.Errorf("template = %q, want vanilla-app", result.Template)
	}
}

func TestGenerate_InvalidNameFailsBeforeIO(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))
	target := t.TempDir()

	_, err := gen.Generate(context.Background(), Request{
		Name:      "Invalid Name!",
		Framework: "vanilla",
		TargetDir: target,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsValidation(err) {
		t.Errorf("error category = %q, want validation", errors.CategoryOf(err))
	}

	entries, readErr := os.ReadDir(target)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("no directory may be created before validation, found %d entries", len(entries))
	}
}

func TestGenerate_ReplacesExistingTarget(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))
	target := t.TempDir()

	projectPath := filepath.Join(target, "demo-app")
	if err := os.MkdirAll(filepath.Join(projectPath, "old"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(projectPath, "old", "stale.txt"), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := gen.Generate(context.Background(), Request{
		Name:      "demo-app",
		Framework: "vanilla",
		TargetDir: target,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(projectPath, "old", "stale.txt")); !os.IsNotExist(err) {
		t.Error("prior contents must be removed in full before materialization")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))
	req := Request{
		Name:      "demo-app",
		Framework: "react",
		Features:  []string{"eslint", "prettier", "docker"},
	}

	req.TargetDir = t.TempDir()
	first, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	firstTree := listTree(t, first.ProjectPath)

	req.TargetDir = t.TempDir()
	second, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	secondTree := listTree(t, second.ProjectPath)

	if !slices.Equal(firstTree, secondTree) {
		t.Errorf("same inputs produced different file sets:\n%v\n%v", firstTree, secondTree)
	}

	// Contents match too.
	for _, rel := range firstTree {
		a, err := os.ReadFile(filepath.Join(first.ProjectPath, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second.ProjectPath, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs between identical runs", rel)
		}
	}
}

func TestGenerate_FeatureFilesLand(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))

	result, err := gen.Generate(context.Background(), Request{
		Name:      "demo-app",
		Framework: "react",
		Features:  []string{"eslint", "jest", "tailwind", "docker"},
		TargetDir: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, rel := range []string{".eslintrc.json", "jest.config.json", "tailwind.config.js", "Dockerfile", ".dockerignore"} {
		if _, err := os.Stat(filepath.Join(result.ProjectPath, rel)); err != nil {
			t.Errorf("feature file %s missing: %v", rel, err)
		}
	}

	// The react skeleton has src/index.css, so the directives are injected.
	css, err := os.ReadFile(filepath.Join(result.ProjectPath, "src", "index.css"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(css), "@tailwind base;") {
		t.Error("tailwind directives should lead src/index.css")
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))
	target := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, Request{
		Name:      "demo-app",
		Framework: "vanilla",
		TargetDir: target,
	})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !errors.IsTimeout(err) {
		t.Errorf("error category = %q, want timeout", errors.CategoryOf(err))
	}
	le := errors.FromError(err, "E000")
	if le.Code != "E090" {
		t.Errorf("code = %q, want E090", le.Code)
	}

	// Cancellation before the target stage leaves nothing behind.
	if _, err := os.Stat(filepath.Join(target, "demo-app")); !os.IsNotExist(err) {
		t.Error("cancelled generation should not create the target")
	}
}

func TestGenerate_DeadlineExceeded(t *testing.T) {
	gen := NewGenerator(newTestRegistry(t))

	ctx, cancel := context.WithTimeout(context.Background(), -1)
	defer cancel()

	_, err := gen.Generate(ctx, Request{
		Name:      "demo-app",
		Framework: "vanilla",
		TargetDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected deadline error")
	}
	le := errors.FromError(err, "E000")
	if le.Code != "E091" {
		t.Errorf("code = %q, want E091", le.Code)
	}
}

func TestGenerate_PinnedTemplate(t *testing.T) {
	reg := newTestRegistry(t)
	gen := NewGenerator(reg)

	result, err := gen.Generate(context.Background(), Request{
		Name:      "demo-app",
		Framework: "vanilla",
		Template:  "react-app",
		TargetDir: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Template != "react-app" {
		t.Errorf("template = %q, want the pinned react-app", result.Template)
	}

	_, err = gen.Generate(context.Background(), Request{
		Name:      "demo-app",
		Framework: "vanilla",
		Template:  "no-such",
		TargetDir: t.TempDir(),
	})
	if !errors.IsNotFound(err) {
		t.Errorf("pinning an unknown template should be notfound, got %v", err)
	}
}

func TestGenerate_Progress(t *testing.T) {
	var stages []string
	gen := NewGenerator(newTestRegistry(t), WithProgress(func(stage, detail string) {
		stages = append(stages, stage)
	}))

	_, err := gen.Generate(context.Background(), Request{
		Name:      "demo-app",
		Framework: "vanilla",
		Features:  []string{"docker"},
		TargetDir: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{StageResolve, StageScaffold, StageCompose, StageManifest}
	if !slices.Equal(stages, want) {
		t.Errorf("stages = %v, want %v", stages, want)
	}
}
