package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusNotFound, "Invitation not found")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"Invitation not found"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Code string `json:"code"`
	}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"ok", `{"code":"123456"}`, "123456", false},
		{"unknown fields ignored", `{"code":"1","extra":true}`, "1", false},
		{"empty", ``, "", true},
		{"malformed", `{"code":`, "", true},
		{"trailing", `{"code":"1"}{"code":"2"}`, "", true},
		{"wrong type", `{"code":123456}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.in))
			var b body
			err := httpx.DecodeJSON(req, &b)
			if tt.wantErr {
				require.ErrorIs(t, err, httpx.ErrBadJSON)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, b.Code)
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestCORS(t *testing.T) {
	h := httpx.CORS([]string{"https://app.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/organization/create-team", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/livez", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
