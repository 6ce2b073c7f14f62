package response

import (
	"io"
	"net/http"

	"github.com/dmitrymomot/cascade/core/chain"
)

// Stream creates a chunked terminal giving the writer function direct access
// to the response body. The response flushes after the writer completes;
// writers that need real-time delivery can flush between chunks themselves.
func Stream(writer func(w io.Writer) error) chain.Handler {
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return nil
		}

		w.Header().Set("Transfer-Encoding", "chunked")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)

		if err := writer(w); err != nil {
			// Status is already on the wire; the error goes to the boundary
			// for logging only.
			return err
		}

		flusher.Flush()
		return nil
	})
}

// Reader creates a terminal copying the reader to the response body with the
// given content type. The reader is closed if it implements io.Closer.
func Reader(rd io.Reader, contentType string) chain.Handler {
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		if c, ok := rd.(io.Closer); ok {
			defer c.Close()
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(http.StatusOK)
		_, err := io.Copy(w, rd)
		return err
	})
}
