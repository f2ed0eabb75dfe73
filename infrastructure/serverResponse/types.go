package server_response

type ServerResponseType interface {
	Respond(ctx interface{}, code int, message string, payload interface{}, errs []error, response_code *uint)
}

var Responder ServerResponseType = ginResponder{}
