package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryValidation,
		Message:  "Invalid project name",
		Detail:   "Project names follow npm package naming: lowercase, at most 214 characters, starting with a letter or digit, using only letters, digits, hyphens, dots, underscores, and tildes.",
		DocURL:   "https://lathe.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryValidation,
		Message:  "Framework is required",
		Detail:   "Every generation request must name a framework (react, vue, express, vanilla, or generic).",
		DocURL:   "https://lathe.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryValidation,
		Message:  "Template name is required",
		Detail:   "Creating a template requires a non-empty name; the name becomes the template's directory.",
		DocURL:   "https://lathe.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryValidation,
		Message:  "Invalid package manager",
		Detail:   "The package manager must be one of npm, yarn, or pnpm.",
		DocURL:   "https://lathe.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryValidation,
		Message:  "Target directory is required",
		Detail:   "A generation request must state where the project tree will be written.",
		DocURL:   "https://lathe.dev/docs/errors/E005",
	},

	// ============================================
	// Not-Found Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryNotFound,
		Message:  "No templates available",
		Detail:   "The templates directory holds no valid templates, so no framework can be resolved.",
		DocURL:   "https://lathe.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryNotFound,
		Message:  "Template not found",
		Detail:   "No template with the requested name exists in the templates directory.",
		DocURL:   "https://lathe.dev/docs/errors/E021",
	},
	"E022": {
		Category: CategoryNotFound,
		Message:  "Project not found",
		Detail:   "No generated project with the requested name exists in the output directory.",
		DocURL:   "https://lathe.dev/docs/errors/E022",
	},

	// ============================================
	// I/O Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryIO,
		Message:  "Could not create directory",
		Detail:   "A directory needed for the generated project could not be created.",
		DocURL:   "https://lathe.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryIO,
		Message:  "Could not write file",
		Detail:   "A project file could not be written. Files written before the failure are left in place.",
		DocURL:   "https://lathe.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryIO,
		Message:  "Could not read template file",
		Detail:   "A file under the template's directory could not be read.",
		DocURL:   "https://lathe.dev/docs/errors/E042",
	},
	"E043": {
		Category: CategoryIO,
		Message:  "Could not replace target directory",
		Detail:   "The pre-existing target directory could not be removed before scaffolding.",
		DocURL:   "https://lathe.dev/docs/errors/E043",
	},
	"E044": {
		Category: CategoryIO,
		Message:  "Could not scan templates directory",
		Detail:   "The templates root could not be enumerated.",
		DocURL:   "https://lathe.dev/docs/errors/E044",
	},

	// ============================================
	// Configuration Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Invalid settings file",
		Detail:   "The config.json settings document is malformed.",
		DocURL:   "https://lathe.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Could not save settings",
		Detail:   "The config.json settings document could not be written.",
		DocURL:   "https://lathe.dev/docs/errors/E061",
	},

	// ============================================
	// Server Errors (E080-E089)
	// ============================================

	"E080": {
		Category: CategoryServer,
		Message:  "Invalid listen address",
		Detail:   "The web server address must be host:port, e.g. ':8640' or 'localhost:8640'.",
		DocURL:   "https://lathe.dev/docs/errors/E080",
	},
	"E081": {
		Category: CategoryServer,
		Message:  "Archive store failure",
		Detail:   "The project archive could not be stored or retrieved.",
		DocURL:   "https://lathe.dev/docs/errors/E081",
	},

	// ============================================
	// Timeout Errors (E090-E099)
	// ============================================

	"E090": {
		Category: CategoryTimeout,
		Message:  "Generation cancelled",
		Detail:   "The caller cancelled the generation before it completed. Files written so far are left in place.",
		DocURL:   "https://lathe.dev/docs/errors/E090",
	},
	"E091": {
		Category: CategoryTimeout,
		Message:  "Generation deadline exceeded",
		Detail:   "The caller-imposed deadline passed before the generation completed. Files written so far are left in place.",
		DocURL:   "https://lathe.dev/docs/errors/E091",
	},

	// ============================================
	// CLI Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryCLI,
		Message:  "Invalid command input",
		Detail:   "A command argument or flag value could not be used.",
		DocURL:   "https://lathe.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryCLI,
		Message:  "Could not read prompt answer",
		Detail:   "Reading an interactive answer from standard input failed.",
		DocURL:   "https://lathe.dev/docs/errors/E101",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
