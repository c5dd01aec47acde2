package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "barbeiro não encontrado")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "barbeiro não encontrado"}, body)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "a", v.Name)
}

func TestReplaceURL(t *testing.T) {
	fragment := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<div>step</div>")
		return err
	})

	t.Run("htmx gets fragment and replace header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/book/w-1/select", nil)
		r.Header.Set(HeaderHXRequest, "true")
		rec := httptest.NewRecorder()

		ReplaceURL(rec, r, "/book/w-1?serviceID=42", func() {
			require.NoError(t, Render(rec, r, http.StatusOK, fragment))
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/book/w-1?serviceID=42", rec.Header().Get(HeaderHXReplaceURL))
		assert.Equal(t, "<div>step</div>", rec.Body.String())
	})

	t.Run("plain form gets see other", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/book/w-1/select", nil)
		rec := httptest.NewRecorder()

		ReplaceURL(rec, r, "/book/w-1?serviceID=42", func() {
			t.Fatal("fragment must not be rendered")
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/book/w-1?serviceID=42", rec.Header().Get("Location"))
	})
}

func TestHistoryBack(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/book/w-1/back", nil)
	r.Header.Set(HeaderHXRequest, "true")
	rec := httptest.NewRecorder()

	HistoryBack(rec, r, "/")

	assert.Equal(t, EventHistoryBack, rec.Header().Get(HeaderHXTrigger))
	assert.Equal(t, "none", rec.Header().Get(HeaderHXReswap))

	r = httptest.NewRequest(http.MethodPost, "/book/w-1/back", nil)
	r.Header.Set("Referer", "https://lobeca.com.br/barbearia/7")
	rec = httptest.NewRecorder()

	HistoryBack(rec, r, "/")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://lobeca.com.br/barbearia/7", rec.Header().Get("Location"))
}

func TestHistoryBack_RefererIsWizardUsesFallback(t *testing.T) {
	for name, referer := range map[string]string{
		"wizard page":       "http://example.com/book/w-1?serviceID=42",
		"relative":          "/book/w-1",
		"other wizard path": "http://example.com/book/w-1/confirm",
	} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "http://example.com/book/w-1/back", nil)
			r.Header.Set("Referer", referer)
			rec := httptest.NewRecorder()

			HistoryBack(rec, r, "/")

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}

	r := httptest.NewRequest(http.MethodPost, "http://example.com/book/w-1/back", nil)
	r.Header.Set("Referer", "http://example.com/barbearia/7")
	rec := httptest.NewRecorder()

	HistoryBack(rec, r, "/")

	assert.Equal(t, "http://example.com/barbearia/7", rec.Header().Get("Location"))
}
