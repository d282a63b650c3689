package scaffold

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lathe-dev/lathe/internal/errors"
)

// Feature identifiers with built-in handlers. The typescript feature has no
// handler here: it is consumed by the framework skeletons and the manifest
// builder.
const (
	FeatureESLint   = "eslint"
	FeaturePrettier = "prettier"
	FeatureJest     = "jest"
	FeatureTailwind = "tailwind"
	FeatureDocker   = "docker"
)

// Project describes the scaffolded directory a feature handler mutates.
type Project struct {
	// Path is the project root on disk.
	Path string

	// Name is the validated project name.
	Name string

	// Framework is the requested framework identifier.
	Framework string
}

// Handler layers one feature onto a scaffolded project.
type Handler func(p Project) error

// Composer applies optional features in caller-supplied order. Handlers are
// independent: none may assume another ran first.
type Composer struct {
	handlers map[string]Handler
	log      *slog.Logger
}

// NewComposer returns a composer with the built-in feature handlers
// registered.
func NewComposer() *Composer {
	c := &Composer{
		handlers: make(map[string]Handler),
		log:      slog.Default().With("component", "composer"),
	}
	c.Register(FeatureESLint, applyESLint)
	c.Register(FeaturePrettier, applyPrettier)
	c.Register(FeatureJest, applyJest)
	c.Register(FeatureTailwind, applyTailwind)
	c.Register(FeatureDocker, applyDocker)
	return c
}

// Register adds or replaces the handler for a feature id.
func (c *Composer) Register(id string, h Handler) {
	c.handlers[id] = h
}

// Handles reports whether a handler is registered for id.
func (c *Composer) Handles(id string) bool {
	_, ok := c.handlers[id]
	return ok
}

// Apply runs the handler for one feature id. Unrecognized ids are a logged
// no-op, never an error.
func (c *Composer) Apply(id string, p Project) error {
	h, ok := c.handlers[id]
	if !ok {
		c.log.Debug("no handler for feature, skipping", "feature", id)
		return nil
	}
	if err := h(p); err != nil {
		return err
	}
	c.log.Debug("feature applied", "feature", id, "project", p.Name)
	return nil
}

// ApplyAll runs handlers in the given order, stopping at the first error.
func (c *Composer) ApplyAll(features []string, p Project) error {
	for _, id := range features {
		if err := c.Apply(id, p); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON marshals v with two-space indentation and writes it under the
// project root.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.New("E041").WithPath(path).Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E041").WithPath(path).Wrap(err)
	}
	return nil
}

// writeText writes raw text content under the project root.
func writeText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("E040").WithPath(filepath.Dir(path)).Wrap(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.New("E041").WithPath(path).Wrap(err)
	}
	return nil
}
