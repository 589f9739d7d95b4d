package api

import (
	"context"
)

type keyType string

const (
	adminSubjectKey keyType = "adminSubject"
	requestIDKey    keyType = "requestID"
)

// ctxWithAdminSubject records the authenticated admin token subject
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// ctxGetAdminSubject returns the admin subject, or "" on unauthenticated requests
func ctxGetAdminSubject(ctx context.Context) string {
	subject, _ := ctx.Value(adminSubjectKey).(string)
	return subject
}

func ctxWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ctxGetRequestID returns the id assigned by RequestIDMiddleware
func ctxGetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
