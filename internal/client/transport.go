package client

import (
	"context"
	"net/http"
)

type traceIDKey struct{}

// TraceHeader carries the dashboard trace id to the upstream API
const TraceHeader = "X-Trace-ID"

// ContextWithTraceID attaches a trace id that outgoing requests forward
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id attached to ctx, if any
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// HeaderTransport sets the JSON headers and forwards the trace id
type HeaderTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if traceID := TraceIDFromContext(req.Context()); traceID != "" {
		req.Header.Set(TraceHeader, traceID)
	}

	return t.base.RoundTrip(req)
}
