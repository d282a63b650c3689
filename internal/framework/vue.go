package framework

// vue generates a Vite-based Vue skeleton.
type vue struct{}

func (v *vue) ID() string          { return "vue" }
func (v *vue) DisplayName() string { return "Vue" }

func (v *vue) DefaultFeatures() []string {
	return []string{"eslint", "prettier"}
}

func (v *vue) BaseFiles(features []string) []File {
	ext := "js"
	if hasFeature(features, FeatureTypeScript) {
		ext = "ts"
	}

	return []File{
		{Path: "src/App.vue", Content: vueApp},
		{Path: "src/main." + ext, Content: vueMain},
		{Path: "index.html", Content: vueIndexHTML(ext)},
	}
}

// vueApp keeps the project tokens inside script bindings so they never
// collide with Vue's own moustache interpolation.
const vueApp = `<script setup>
const title = '{{projectName}}'
const description = '{{projectDescription}}'
</script>

<template>
  <div class="app">
    <header>
      <h1>{{ title }}</h1>
      <p>{{ description }}</p>
    </header>
    <main>
      <p>Edit <code>src/App.vue</code> and save to reload.</p>
    </main>
  </div>
</template>

<style scoped>
.app {
  max-width: 960px;
  margin: 0 auto;
  padding: 2rem;
  text-align: center;
  font-family: system-ui, Avenir, Helvetica, Arial, sans-serif;
}
</style>
`

const vueMain = `import { createApp } from 'vue'
import App from './App.vue'

createApp(App).mount('#app')
`

func vueIndexHTML(ext string) string {
	return `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta name="description" content="{{projectDescription}}" />
    <title>{{projectName}}</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.` + ext + `"></script>
  </body>
</html>
`
}
