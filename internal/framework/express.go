package framework

// express generates a minimal Express API skeleton with a single entry file.
type express struct{}

func (e *express) ID() string          { return "express" }
func (e *express) DisplayName() string { return "Express" }

func (e *express) DefaultFeatures() []string {
	return []string{"eslint"}
}

func (e *express) BaseFiles(features []string) []File {
	files := []File{
		{Path: "src/index.js", Content: expressIndex},
	}
	if hasFeature(features, FeatureTypeScript) {
		files = append(files, File{Path: "tsconfig.json", Content: expressTSConfig})
	}
	return files
}

const expressIndex = `// {{projectName}} - {{projectDescription}}

const express = require('express')
const path = require('path')

const app = express()
const port = process.env.PORT || 3000

app.use(express.json())
app.use(express.static(path.join(__dirname, '..', 'public')))

app.get('/', (req, res) => {
  res.json({
    name: '{{projectName}}',
    version: '1.0.0',
    timestamp: new Date().toISOString(),
  })
})

app.get('/health', (req, res) => {
  res.json({ status: 'ok', uptime: process.uptime() })
})

app.listen(port, () => {
  console.log(` + "`" + `{{projectName}} listening on port ${port}` + "`" + `)
})
`

const expressTSConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "commonjs",
    "moduleResolution": "node",
    "esModuleInterop": true,
    "skipLibCheck": true,
    "strict": true,
    "outDir": "dist"
  },
  "include": ["src"]
}
`
