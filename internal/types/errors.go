package types

// PublicHTTPErrorType is the machine readable type of an error response.
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric              PublicHTTPErrorType = "generic"
	PublicHTTPErrorTypeANONYMOUSCALLER      PublicHTTPErrorType = "ANONYMOUS_CALLER"
	PublicHTTPErrorTypeINVALIDTOKEN         PublicHTTPErrorType = "INVALID_TOKEN"
	PublicHTTPErrorTypeINVALIDMESSAGELENGTH PublicHTTPErrorType = "INVALID_MESSAGE_LENGTH"
	PublicHTTPErrorTypeMALFORMEDTRANSACTION PublicHTTPErrorType = "MALFORMED_TRANSACTION"
	PublicHTTPErrorTypeINVALIDSOURCE        PublicHTTPErrorType = "INVALID_SOURCE"
	PublicHTTPErrorTypeINVALIDCYCLES        PublicHTTPErrorType = "INVALID_ATTACHED_CYCLES"
	PublicHTTPErrorTypeINVALIDSTATE         PublicHTTPErrorType = "INVALID_STATE"
	PublicHTTPErrorTypeNOTINITIALIZED       PublicHTTPErrorType = "NOT_INITIALIZED"
	PublicHTTPErrorTypeSIGNINGFAILED        PublicHTTPErrorType = "SIGNING_FAILED"
	PublicHTTPErrorTypeUPSTREAMINVALID      PublicHTTPErrorType = "UPSTREAM_INVALID_RESPONSE"
)

// HTTPError is the body of every non broadcast error response.
type HTTPError struct {
	Detail           string                       `json:"detail,omitempty"`
	Internal         string                       `json:"internal,omitempty"`
	Status           int                          `json:"status"`
	Title            string                       `json:"title"`
	Type             PublicHTTPErrorType          `json:"type"`
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors,omitempty"`
}

type HTTPValidationErrorDetail struct {
	Error *string `json:"error"`
	In    *string `json:"in"`
	Key   *string `json:"key"`
}

// RPCErrorResponse is the body returned when the broadcast service fails.
type RPCErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
