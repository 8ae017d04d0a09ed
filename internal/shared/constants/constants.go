package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableInspections             = "inspections"
	TableInspectionItems         = "inspection_items"
	TableInspectionActions       = "inspection_corrective_actions"
	TableInspectionSignoffs      = "inspection_signoffs"
	TableInspectionActivities    = "inspection_activities"
	TableInspectionTemplates     = "inspection_templates"
	TableInspectionTemplateItems = "inspection_template_items"
	TableFacilities              = "facilities"
	TableUsers                   = "users"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
