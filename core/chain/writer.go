package chain

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter wraps http.ResponseWriter to record the first write.
// The pipeline inspects this flag to prevent double-written responses.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written reports whether a status line has been sent.
func (w *responseWriter) Written() bool {
	return w.written
}

// Status returns the status code sent, or zero before the first write.
func (w *responseWriter) Status() int {
	return w.status
}

// Flush implements http.Flusher if the underlying writer supports it.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack implements http.Hijacker if the underlying writer supports it.
// Protocol upgrades (e.g. WebSocket terminals) depend on this passthrough.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hj, ok := w.ResponseWriter.(http.Hijacker); ok {
		w.written = true
		return hj.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}
