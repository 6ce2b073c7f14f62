package response_test

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cascade/core/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_value", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.JSON(map[string]any{"name": "alice", "age": 30}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"name":"alice","age":30}`, rec.Body.String())
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.JSONWithStatus(map[string]string{"id": "1"}, http.StatusCreated))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"1"}`, rec.Body.String())
	})

	t.Run("no_content_omits_body", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.JSONWithStatus(map[string]string{"ignored": "yes"}, http.StatusNoContent))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("nil_value_encodes_null", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.JSON(nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null\n", rec.Body.String())
	})
}

func TestXML(t *testing.T) {
	t.Parallel()

	type user struct {
		XMLName xml.Name `xml:"user"`
		Name    string   `xml:"name"`
	}

	t.Run("encodes_with_header", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.XML(user{Name: "alice"}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), xml.Header))
		assert.Contains(t, rec.Body.String(), "<user><name>alice</name></user>")
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.XMLWithStatus(user{Name: "bob"}, http.StatusAccepted))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), "<name>bob</name>")
	})
}
