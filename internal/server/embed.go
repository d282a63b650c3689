package server

import _ "embed"

// indexHTML is the single-page UI served at "/".
//
//go:embed assets/index.html
var indexHTML []byte
