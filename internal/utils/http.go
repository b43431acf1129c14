package utils

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a route parameter from the request context.
func ExtractParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName(paramName)
}

// PathParameter reads a path parameter from an API Gateway parameter map, which may be nil.
func PathParameter(params map[string]string, paramName string) string {
	if params == nil {
		return ""
	}
	return params[paramName]
}
