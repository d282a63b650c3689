package framework

// react generates a Vite-based React skeleton.
type react struct{}

func (r *react) ID() string          { return "react" }
func (r *react) DisplayName() string { return "React" }

func (r *react) DefaultFeatures() []string {
	return []string{"eslint", "prettier"}
}

func (r *react) BaseFiles(features []string) []File {
	ext := "jsx"
	cfgExt := "js"
	if hasFeature(features, FeatureTypeScript) {
		ext = "tsx"
		cfgExt = "ts"
	}

	files := []File{
		{Path: "src/App." + ext, Content: reactApp},
		{Path: "src/main." + ext, Content: reactMain(ext)},
		{Path: "src/index.css", Content: reactIndexCSS},
		{Path: "index.html", Content: reactIndexHTML(ext)},
		{Path: "vite.config." + cfgExt, Content: reactViteConfig},
	}
	if ext == "tsx" {
		files = append(files, File{Path: "tsconfig.json", Content: reactTSConfig})
	}
	return files
}

const reactApp = `function App() {
  return (
    <div className="app">
      <header>
        <h1>{{projectName}}</h1>
        <p>{{projectDescription}}</p>
      </header>
      <main>
        <p>
          Edit <code>src/App</code> and save to reload.
        </p>
      </main>
    </div>
  )
}

export default App
`

func reactMain(ext string) string {
	rootLookup := "document.getElementById('root')"
	if ext == "tsx" {
		rootLookup += "!"
	}
	return `import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App.` + ext + `'
import './index.css'

ReactDOM.createRoot(` + rootLookup + `).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`
}

const reactIndexCSS = `/* {{projectName}} base styles */

:root {
  font-family: system-ui, Avenir, Helvetica, Arial, sans-serif;
  line-height: 1.5;
  color-scheme: light dark;
}

body {
  margin: 0;
  min-height: 100vh;
}

.app {
  max-width: 960px;
  margin: 0 auto;
  padding: 2rem;
  text-align: center;
}
`

func reactIndexHTML(ext string) string {
	return `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta name="description" content="{{projectDescription}}" />
    <title>{{projectName}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.` + ext + `"></script>
  </body>
</html>
`
}

const reactViteConfig = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})
`

const reactTSConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "useDefineForClassFields": true,
    "lib": ["ES2020", "DOM", "DOM.Iterable"],
    "module": "ESNext",
    "skipLibCheck": true,
    "moduleResolution": "bundler",
    "allowImportingTsExtensions": true,
    "resolveJsonModule": true,
    "isolatedModules": true,
    "noEmit": true,
    "jsx": "react-jsx",
    "strict": true
  },
  "include": ["src"]
}
`
