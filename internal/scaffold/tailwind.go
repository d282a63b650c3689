package scaffold

import (
	"os"
	"path/filepath"

	"github.com/lathe-dev/lathe/internal/errors"
)

// tailwindDirectives are prepended to src/index.css. Order matters: the
// directives must precede any prior content.
const tailwindDirectives = "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n"

const tailwindConfig = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: ['./index.html', './src/**/*.{js,ts,jsx,tsx,vue}'],
  theme: {
    extend: {},
  },
  plugins: [],
}
`

// applyTailwind writes the Tailwind configuration and injects the utility
// directives at the top of src/index.css when that file exists. Absence is
// a silent skip. Re-application prepends again: the injection is not
// idempotent.
func applyTailwind(p Project) error {
	if err := writeText(filepath.Join(p.Path, "tailwind.config.js"), tailwindConfig); err != nil {
		return err
	}

	cssPath := filepath.Join(p.Path, "src", "index.css")
	existing, err := os.ReadFile(cssPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.New("E042").WithPath(cssPath).Wrap(err)
	}

	content := append([]byte(tailwindDirectives+"\n"), existing...)
	if err := os.WriteFile(cssPath, content, 0644); err != nil {
		return errors.New("E041").WithPath(cssPath).Wrap(err)
	}
	return nil
}
