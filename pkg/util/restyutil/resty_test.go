package restyutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValuesSkipsEmpty(t *testing.T) {
	values := QueryValues(map[string]string{
		"repository":        "maven-public",
		"continuationToken": "",
		"q":                 "",
	})

	assert.Equal(t, "repository=maven-public", values.Encode())
}

func TestNewUsesBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service/rest/v1/assets/abc", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL+"/", nil)
	resp, err := client.R().
		SetPathParam("id", "abc").
		Get("/service/rest/v1/assets/{id}")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
