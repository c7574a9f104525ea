package nexus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePage(t *testing.T) {
	body := []byte(`{
		"items": [
			{"id": "a1", "path": "com/acme/x.jar", "repository": "maven-releases", "format": "maven2",
			 "downloadUrl": "http://nexus/repository/maven-releases/com/acme/x.jar",
			 "checksum": {"sha1": "abc"}, "unknown": 42}
		],
		"continuationToken": "next"
	}`)

	page, err := decodePage[Asset](body)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, Asset{
		ID:          "a1",
		Path:        "com/acme/x.jar",
		Repository:  "maven-releases",
		Format:      "maven2",
		DownloadURL: "http://nexus/repository/maven-releases/com/acme/x.jar",
		Checksum:    map[string]string{"sha1": "abc"},
	}, page.Items[0])
	assert.Equal(t, "next", page.ContinuationToken)
	assert.True(t, page.HasMore())
}

func TestDecodePageEndOfListing(t *testing.T) {
	for name, body := range map[string]string{
		"null token":   `{"items": [], "continuationToken": null}`,
		"absent token": `{"items": []}`,
		"blank token":  `{"items": [], "continuationToken": "  "}`,
	} {
		t.Run(name, func(t *testing.T) {
			page, err := decodePage[Asset]([]byte(body))
			require.NoError(t, err)
			assert.False(t, page.HasMore())
			assert.Empty(t, page.Items)
		})
	}
}

func TestDecodePageMissingFields(t *testing.T) {
	page, err := decodePage[Component]([]byte(`{"items": [{"name": "only-name"}]}`))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, Component{Name: "only-name"}, page.Items[0])
}

func TestDecodePageErrors(t *testing.T) {
	_, err := decodePage[Asset]([]byte(`<html>gateway timeout</html>`))
	assert.Error(t, err)

	_, err = decodePage[Asset]([]byte(`{"items": [{"id": "ok"}, {"id": 7}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[1]")
}

func TestDecodeList(t *testing.T) {
	repos, err := decodeList[Repository]([]byte(`[
		{"name": "maven-public", "format": "maven2", "type": "group", "url": "http://nexus/repository/maven-public"},
		{"name": "raw-hosted", "format": "raw", "type": "hosted", "url": "http://nexus/repository/raw-hosted", "online": true}
	]`))
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "maven-public", repos[0].Name)
	assert.Equal(t, "group", repos[0].Type)
	assert.True(t, repos[1].Online)

	_, err = decodeList[Repository]([]byte(`{"name": "not-a-list"}`))
	assert.Error(t, err)
}
