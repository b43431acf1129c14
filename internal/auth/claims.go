// Package auth resolves the caller's subject identifier, either from the
// API Gateway authorizer context or from a bearer JWT on the local server.
package auth

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

type subjectKey struct{}

// SubjectFromRestEvent returns requestContext.authorizer.claims.sub, or "" when absent.
func SubjectFromRestEvent(req events.APIGatewayProxyRequest) string {
	if req.RequestContext.Authorizer == nil {
		return ""
	}

	var sub string
	switch claims := req.RequestContext.Authorizer["claims"].(type) {
	case map[string]interface{}:
		sub, _ = claims["sub"].(string)
	case map[string]string:
		sub = claims["sub"]
	}
	return strings.TrimSpace(sub)
}

// WithSubject stores the authenticated subject in the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext returns the subject stored by WithSubject, or "".
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey{}).(string)
	return subject
}
