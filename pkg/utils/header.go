package utils

const (
	HEADER_ACCEL_REDIRECT      = "X-Accel-Redirect"
	HEADER_CONTENT_TYPE        = "Content-Type"
	HEADER_CONTENT_DISPOSITION = "Content-Disposition"
	HEADER_AUTHORIZATION       = "Authorization"
	HEADER_REQUEST_ID          = "X-Request-Id"
)
