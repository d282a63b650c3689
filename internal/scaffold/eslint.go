package scaffold

import "path/filepath"

// eslintConfig is the .eslintrc.json document.
type eslintConfig struct {
	Env           map[string]bool `json:"env"`
	Extends       []string        `json:"extends"`
	ParserOptions map[string]any  `json:"parserOptions"`
	Plugins       []string        `json:"plugins,omitempty"`
	Settings      map[string]any  `json:"settings,omitempty"`
	Rules         map[string]any  `json:"rules"`
}

// applyESLint writes a lint configuration with the recommended baseline.
// React projects get the React plugin preset and JSX parsing on top.
func applyESLint(p Project) error {
	cfg := eslintConfig{
		Env: map[string]bool{
			"browser": true,
			"es2021":  true,
			"node":    true,
		},
		Extends: []string{"eslint:recommended"},
		ParserOptions: map[string]any{
			"ecmaVersion": "latest",
			"sourceType":  "module",
		},
		Rules: map[string]any{},
	}

	if p.Framework == "react" {
		cfg.Extends = append(cfg.Extends, "plugin:react/recommended")
		cfg.Plugins = []string{"react"}
		cfg.ParserOptions["ecmaFeatures"] = map[string]bool{"jsx": true}
		cfg.Settings = map[string]any{
			"react": map[string]string{"version": "detect"},
		}
	}

	return writeJSON(filepath.Join(p.Path, ".eslintrc.json"), cfg)
}
