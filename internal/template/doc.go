// Package template maintains the on-disk template catalog.
//
// Each template is a directory under the templates root holding a
// template.json manifest plus the template's scaffold files. The directory
// name is the template's identity and must match the manifest's name field.
//
// # Manifest
//
// Every template directory carries exactly one template.json:
//
//	{
//	  "name": "react-app",
//	  "framework": "react",
//	  "description": "A React application powered by Vite",
//	  "features": ["typescript", "eslint"],
//	  "version": "1.0.0",
//	  "author": "Ada Lovelace",
//	  "createdAt": "2026-08-25T12:00:00Z",
//	  "files": []
//	}
//
// Manifests are validated against an embedded JSON schema and the version
// field must parse as semver. The files list is kept empty on disk; the
// real scaffold file set is enumerated from the directory at load time,
// excluding template.json itself and node_modules.
//
// # Listing Semantics
//
// List scans the root with os.ReadDir. A directory whose manifest is
// missing, malformed, schema-invalid, or name-mismatched is skipped with a
// warning log, never an error. A missing root lists as empty.
//
// # Usage
//
//	reg := template.NewRegistry(filepath.Join(home, "templates"))
//	if err := reg.EnsureDefaults("Ada Lovelace"); err != nil {
//	    return err
//	}
//	templates, err := reg.List()
//
// EnsureDefaults synthesizes the react-app, vue-app, and express-api
// built-ins only when the root holds zero valid templates.
package template
