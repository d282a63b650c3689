package scaffold

import "path/filepath"

const dockerfile = `FROM node:20-alpine

WORKDIR /app

COPY package*.json ./
RUN npm install

COPY . .

EXPOSE 3000

CMD ["npm", "start"]
`

const dockerignore = `node_modules
dist
build
.git
.env
*.log
`

// applyDocker writes a container build file and its matching ignore list.
func applyDocker(p Project) error {
	if err := writeText(filepath.Join(p.Path, "Dockerfile"), dockerfile); err != nil {
		return err
	}
	return writeText(filepath.Join(p.Path, ".dockerignore"), dockerignore)
}
