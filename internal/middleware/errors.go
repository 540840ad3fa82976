package middleware

import (
	"errors"

	restful "github.com/emicklei/go-restful/v3"
)

var ErrEmptyQuery = errors.New("query must not be empty")

type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
	Code  int    `json:"code" description:"HTTP status code"`
}

func HandleError(resp *restful.Response, err error, statusCode int) {
	resp.WriteHeaderAndEntity(statusCode, ErrorResponse{
		Error: err.Error(),
		Code:  statusCode,
	})
}
