package scaffold

import "path/filepath"

// jestConfig is the jest.config.json document.
type jestConfig struct {
	TestEnvironment    string   `json:"testEnvironment"`
	SetupFilesAfterEnv []string `json:"setupFilesAfterEnv,omitempty"`
}

// applyJest writes the test runner configuration. React projects test in a
// browser-like environment with a setup file reference; everything else
// runs in the plain node environment.
func applyJest(p Project) error {
	cfg := jestConfig{TestEnvironment: "node"}
	if p.Framework == "react" {
		cfg.TestEnvironment = "jsdom"
		cfg.SetupFilesAfterEnv = []string{"<rootDir>/src/setupTests.js"}
	}
	return writeJSON(filepath.Join(p.Path, "jest.config.json"), cfg)
}
