package models

import "net/http"

// GenericErrorMessage is the user-facing text carried by every structured error body.
const GenericErrorMessage = "sorry, there was an error processing your request"

// ResponseMessage is the structured body returned for 400 and 500 responses.
type ResponseMessage struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// UnauthorizedMessage is the 401 body.
type UnauthorizedMessage struct {
	Message string `json:"message"`
}

// NewBadRequestMessage builds a 400 body with the given detail.
func NewBadRequestMessage(detail string) ResponseMessage {
	return ResponseMessage{
		Status:  http.StatusBadRequest,
		Message: GenericErrorMessage,
		Detail:  detail,
	}
}

// NewServerErrorMessage builds a 500 body whose detail embeds the error text.
func NewServerErrorMessage(err error) ResponseMessage {
	detail := "Unexpected server error"
	if err != nil {
		detail += ": " + err.Error()
	}
	return ResponseMessage{
		Status:  http.StatusInternalServerError,
		Message: GenericErrorMessage,
		Detail:  detail,
	}
}

// NewUnauthorizedMessage builds the 401 body.
func NewUnauthorizedMessage() UnauthorizedMessage {
	return UnauthorizedMessage{Message: "Unauthorized"}
}
