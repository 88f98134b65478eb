package response

// Business codes mirror HTTP semantics so the envelope's code doubles
// as the response status.
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeValidation   = 422
	CodeServerError  = 500
)

var codeMsg = map[int]string{
	CodeOK:           "OK",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeForbidden:    "Forbidden",
	CodeNotFound:     "Not Found",
	CodeConflict:     "Conflict",
	CodeValidation:   "Validation Failed",
	CodeServerError:  "Internal Server Error",
}

// Status maps a business code to the HTTP status it is written with.
func Status(code int) int {
	if code == CodeOK {
		return 200
	}
	return code
}
