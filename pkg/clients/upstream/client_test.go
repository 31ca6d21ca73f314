package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/session"
)

func TestGetAttachesTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "farm-1", r.URL.Query().Get("farmId"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x-1"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL + "/")
	sess := session.Session{Token: "tok-1"}

	var out struct {
		ID string `json:"id"`
	}
	err := c.Get(context.Background(), sess, "/things", map[string]string{"farmId": "farm-1"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "x-1", out.ID)
}

func TestAnonymousRequestOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	err := New(srv.URL).Get(context.Background(), session.Session{}, "/things", nil, nil)
	require.NoError(t, err)
}

func TestErrorPayloadVariants(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message key", `{"message":"damId is required"}`, "damId is required"},
		{"error key", `{"error":"damId is required"}`, "damId is required"},
		{"empty body", `{}`, "The server rejected the request."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			err := New(srv.URL).Post(context.Background(), session.Session{Token: "t"}, "/things", map[string]any{}, nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestStatusMappedThroughTaxonomy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	err := New(srv.URL).Delete(context.Background(), session.Session{Token: "t"}, "/things/1")
	require.Error(t, err)

	var upstream *apperr.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Equal(t, "You do not have permission to perform this action.", upstream.Message)
}

func TestTransportErrorWrapsVerbAndPath(t *testing.T) {
	err := New("http://127.0.0.1:1").Get(context.Background(), session.Session{Token: "t"}, "/things", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get /things")
}

func TestPatchSendsBody(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	err := New(srv.URL).Patch(context.Background(), session.Session{Token: "t"}, "/things/1", map[string]any{"dosage": 3}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, received["dosage"])
}
