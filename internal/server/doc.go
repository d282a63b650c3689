// Package server exposes the generation pipeline over HTTP.
//
// # Routes
//
//   - GET  /                      embedded form page
//   - GET  /healthz               status and uptime
//   - GET  /metrics               Prometheus metrics
//   - GET  /ws/progress           WebSocket generation progress
//   - GET  /api/templates         list templates
//   - POST /api/templates         create a template
//   - GET  /api/templates/{name}  one template
//   - POST /api/generate          run a generation
//   - GET  /api/archives/{id}     download a project archive
//   - GET  /api/config            current settings
//   - PATCH /api/config           merge and persist settings
//
// # Progress Events
//
// Every generation gets a job ID, returned in the /api/generate response
// and attached to each WebSocket event so a client can follow its own job:
//
//	{"type": "stage", "job": "f81d...", "stage": "scaffold", "detail": "react-app"}
//	{"type": "done", "job": "f81d...", "archive": "9f86..."}
//	{"type": "error", "job": "f81d...", "error": "no templates available"}
//
// # Usage
//
//	srv := server.New(cfg, registry, store, outputDir)
//	return srv.ListenAndServe(ctx, ":8640")
//
// ListenAndServe blocks until the context is cancelled, then closes the
// progress hub and shuts the HTTP server down gracefully.
package server
