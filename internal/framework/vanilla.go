package framework

// vanilla generates a dependency-free static site with a click counter.
type vanilla struct{}

func (v *vanilla) ID() string          { return "vanilla" }
func (v *vanilla) DisplayName() string { return "Vanilla JS" }

func (v *vanilla) DefaultFeatures() []string { return nil }

func (v *vanilla) BaseFiles(features []string) []File {
	return []File{
		{Path: "index.html", Content: vanillaIndexHTML},
		{Path: "style.css", Content: vanillaStyleCSS},
		{Path: "script.js", Content: vanillaScriptJS},
	}
}

const vanillaIndexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta name="description" content="{{projectDescription}}" />
    <title>{{projectName}}</title>
    <link rel="stylesheet" href="style.css" />
  </head>
  <body>
    <main>
      <h1>{{projectName}}</h1>
      <p>{{projectDescription}}</p>
      <button id="counter" type="button">Clicked 0 times</button>
    </main>
    <script src="script.js"></script>
  </body>
</html>
`

const vanillaStyleCSS = `/* {{projectName}} styles */

:root {
  font-family: system-ui, Avenir, Helvetica, Arial, sans-serif;
  line-height: 1.5;
}

body {
  margin: 0;
  display: grid;
  place-items: center;
  min-height: 100vh;
}

main {
  text-align: center;
}

button {
  padding: 0.6em 1.2em;
  font-size: 1em;
  border-radius: 8px;
  border: 1px solid transparent;
  cursor: pointer;
}
`

const vanillaScriptJS = `// {{projectName}} - {{projectDescription}}

let count = 0

const button = document.getElementById('counter')
button.addEventListener('click', () => {
  count += 1
  button.textContent = ` + "`" + `Clicked ${count} times` + "`" + `
})
`
