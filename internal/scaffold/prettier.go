package scaffold

import "path/filepath"

// prettierConfig is the .prettierrc.json document. The style is fixed:
// semicolons on, single quotes, 80 column width, 2-space indentation.
type prettierConfig struct {
	Semi        bool `json:"semi"`
	SingleQuote bool `json:"singleQuote"`
	PrintWidth  int  `json:"printWidth"`
	TabWidth    int  `json:"tabWidth"`
}

// applyPrettier writes the formatter configuration.
func applyPrettier(p Project) error {
	cfg := prettierConfig{
		Semi:        true,
		SingleQuote: true,
		PrintWidth:  80,
		TabWidth:    2,
	}
	return writeJSON(filepath.Join(p.Path, ".prettierrc.json"), cfg)
}
