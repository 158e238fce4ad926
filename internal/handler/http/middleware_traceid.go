package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-derma-records/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen bounds caller supplied trace ids that end up in every
	// log line of the request.
	maxTraceIDLen = 128
)

var traceIDs utils.IDGenerator = utils.NewUUIDGenerator()

// withTraceID tags the request logger and the response with a trace id.
// A well-formed X-Trace-ID from the caller is kept so a mobile client can
// follow one analysis across services; anything else is replaced with a
// fresh UUIDv7.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// validTraceID accepts 1..maxTraceIDLen characters of [A-Za-z0-9._:-].
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
