// Package errors provides structured, actionable error messages for Lathe.
//
// Every failure surfaced to a user carries a category from the scaffolding
// taxonomy and, in most cases, a registered code:
//   - validation: bad request input (project name, missing framework),
//     reported before any filesystem I/O
//   - notfound: no template matches and the registry is empty, or a named
//     template does not exist
//   - io: filesystem failures while creating, writing, or removing files
//   - config: settings file problems (malformed document, failed persist)
//   - timeout: a caller-imposed deadline or cancellation observed between
//     pipeline stages
//   - server: web surface failures (bad listen address, archive store)
//   - cli: command-line surface failures (prompt reads, bad flag input)
//
// # Error Codes
//
// Each registered code (e.g. "E001") maps to a short message, a detailed
// explanation, and a documentation URL. Codes are banded by category; see
// registry.go.
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail("Project name 'My App' contains uppercase letters and spaces").
//	    WithSuggestion("Use lowercase letters, digits, and hyphens, e.g. 'my-app'")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Invalid project name
//	//
//	//   Project name 'My App' contains uppercase letters and spaces
//	//
//	//   Hint: Use lowercase letters, digits, and hyphens, e.g. 'my-app'
//	//
//	//   Learn more: https://lathe.dev/docs/errors/E001
package errors
