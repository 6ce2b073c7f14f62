package response

import (
	"encoding/json"
	"encoding/xml"
	"net/http"

	"github.com/dmitrymomot/cascade/core/chain"
)

// JSON creates an application/json terminal with 200 OK status.
// Encoding streams directly to the response writer.
func JSON(v any) chain.Handler {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json terminal with a custom status code.
func JSONWithStatus(v any, status int) chain.Handler {
	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)

		// 204 and 304 carry no body per the HTTP spec.
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	})
}

// XML creates an application/xml terminal with 200 OK status.
func XML(v any) chain.Handler {
	return XMLWithStatus(v, http.StatusOK)
}

// XMLWithStatus creates an application/xml terminal with a custom status code.
func XMLWithStatus(v any, status int) chain.Handler {
	if status == 0 {
		status = http.StatusOK
	}
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(status)
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}
		if _, err := w.Write([]byte(xml.Header)); err != nil {
			return err
		}
		return xml.NewEncoder(w).Encode(v)
	})
}
