// Package scaffold implements the project generation pipeline.
//
// A generation runs four stages in order:
//
//   - resolve: pick the template matching the requested framework, falling
//     back to the first listed template
//   - scaffold: copy the template's files into the target directory,
//     replacing the {{projectName}} and {{projectDescription}} tokens
//   - compose: apply requested features (eslint, prettier, jest, tailwind,
//     docker) in caller order
//   - manifest: derive and write package.json from the framework and
//     feature set
//
// The pipeline is sequential with no internal parallelism. The first error
// aborts the remaining stages; files already written stay on disk. Context
// cancellation is observed between stages and surfaces as a timeout-category
// error.
//
// # Usage
//
//	reg := template.NewRegistry(root)
//	gen := scaffold.NewGenerator(reg)
//	result, err := gen.Generate(ctx, scaffold.Request{
//	    Name:      "demo-app",
//	    Framework: "react",
//	    Features:  []string{"typescript", "eslint"},
//	    TargetDir: ".",
//	})
package scaffold
