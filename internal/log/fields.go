package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldYear      = "year"
	FieldLine      = "line"
	FieldReason    = "reason"
	FieldRawDate   = "raw_date"
	FieldISODate   = "iso_date"
	FieldRows      = "rows"
	FieldSkipped   = "skipped"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentIngest  = "ingest"
	ComponentStorage = "storage"
	ComponentSheets  = "sheets"
	ComponentRender  = "render"
	ComponentBackend = "backend"
	ComponentImport  = "import"
)
