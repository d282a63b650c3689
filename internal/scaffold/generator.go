package scaffold

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lathe-dev/lathe/internal/errors"
	"github.com/lathe-dev/lathe/internal/template"
)

// tracerName identifies generation spans on the global tracer provider.
const tracerName = "lathe/scaffold"

// Pipeline stage names reported through progress callbacks and spans.
const (
	StageResolve  = "resolve"
	StageScaffold = "scaffold"
	StageCompose  = "compose"
	StageManifest = "manifest"
)

// Result describes a completed generation.
type Result struct {
	// ProjectPath is the directory holding the generated project.
	ProjectPath string `json:"projectPath"`

	// Template is the name of the template that was materialized.
	Template string `json:"template"`

	// FilesWritten lists the relative paths written during scaffolding,
	// before feature composition.
	FilesWritten []string `json:"filesWritten"`

	// Manifest is the derived package manifest.
	Manifest ProjectManifest `json:"manifest"`
}

// ProgressFunc receives stage notifications during generation. The detail
// string names the template, feature, or file involved.
type ProgressFunc func(stage, detail string)

// Generator runs the full scaffolding pipeline: resolve, scaffold, compose,
// manifest.
type Generator struct {
	registry     *template.Registry
	materializer *Materializer
	composer     *Composer
	tracer       trace.Tracer
	log          *slog.Logger
	progress     ProgressFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithProgress registers a callback invoked at each pipeline stage.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// WithComposer replaces the default feature composer.
func WithComposer(c *Composer) Option {
	return func(g *Generator) {
		g.composer = c
	}
}

// NewGenerator returns a generator over the given template registry.
func NewGenerator(reg *template.Registry, opts ...Option) *Generator {
	g := &Generator{
		registry:     reg,
		materializer: NewMaterializer(reg),
		composer:     NewComposer(),
		tracer:       otel.Tracer(tracerName),
		log:          slog.Default().With("component", "generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Composer returns the generator's feature composer, so callers can
// register additional handlers.
func (g *Generator) Composer() *Composer {
	return g.composer
}

// Generate runs the pipeline for one request. Validation happens before any
// filesystem work. Cancellation is observed between stages; a cancelled or
// expired context aborts with a timeout-category error, leaving prior
// stages' output on disk.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	ctx, span := g.tracer.Start(ctx, "lathe.generate",
		trace.WithAttributes(
			attribute.String("lathe.project", req.Name),
			attribute.String("lathe.framework", req.Framework),
			attribute.Int("lathe.feature_count", len(req.Features)),
		),
	)
	defer span.End()

	result, err := g.generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return result, nil
}

func (g *Generator) generate(ctx context.Context, req Request) (*Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	// Resolve the template.
	g.report(StageResolve, req.Framework)
	var (
		tmpl *template.Template
		err  error
	)
	if req.Template != "" {
		tmpl, err = g.registry.Get(req.Template)
	} else {
		tmpl, err = g.materializer.Resolve(req.Framework)
	}
	if err != nil {
		return nil, err
	}

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	// Replace the target in full: no merging with prior contents.
	projectPath := req.ProjectPath()
	if _, statErr := os.Stat(projectPath); statErr == nil {
		if err := os.RemoveAll(projectPath); err != nil {
			return nil, errors.New("E043").WithPath(projectPath).Wrap(err)
		}
		g.log.Debug("existing target removed", "path", projectPath)
	}
	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return nil, errors.New("E040").WithPath(projectPath).Wrap(err)
	}

	// Scaffold.
	g.report(StageScaffold, tmpl.Name)
	written, err := g.stageScaffold(ctx, tmpl, projectPath, req)
	if err != nil {
		return nil, err
	}

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	// Compose features in caller order.
	project := Project{Path: projectPath, Name: req.Name, Framework: req.Framework}
	for _, id := range req.Features {
		if err := checkCancelled(ctx); err != nil {
			return nil, err
		}
		g.report(StageCompose, id)
		if err := g.stageCompose(ctx, id, project); err != nil {
			return nil, err
		}
	}

	// Manifest, written once as the final step.
	g.report(StageManifest, ManifestFileName)
	manifest := BuildManifest(req)
	if err := WriteManifest(manifest, projectPath); err != nil {
		return nil, err
	}

	g.log.Info("project generated",
		"project", req.Name,
		"framework", req.Framework,
		"template", tmpl.Name,
		"files", len(written),
		"features", len(req.Features),
	)

	return &Result{
		ProjectPath:  projectPath,
		Template:     tmpl.Name,
		FilesWritten: written,
		Manifest:     manifest,
	}, nil
}

func (g *Generator) stageScaffold(ctx context.Context, tmpl *template.Template, projectPath string, req Request) ([]string, error) {
	_, span := g.tracer.Start(ctx, "lathe.scaffold",
		trace.WithAttributes(attribute.String("lathe.template", tmpl.Name)),
	)
	defer span.End()

	written, err := g.materializer.Scaffold(tmpl, projectPath, Details{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("lathe.files_written", len(written)))
	return written, nil
}

func (g *Generator) stageCompose(ctx context.Context, id string, project Project) error {
	_, span := g.tracer.Start(ctx, "lathe.compose",
		trace.WithAttributes(attribute.String("lathe.feature", id)),
	)
	defer span.End()

	if err := g.composer.Apply(id, project); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (g *Generator) report(stage, detail string) {
	if g.progress != nil {
		g.progress(stage, detail)
	}
}

// checkCancelled maps context termination to coded timeout errors. Called
// at stage boundaries only: a stage in flight runs to completion.
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errors.New("E091").Wrap(ctx.Err())
		}
		return errors.New("E090").Wrap(ctx.Err())
	default:
		return nil
	}
}
