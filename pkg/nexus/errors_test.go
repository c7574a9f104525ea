package nexus

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHelpers(t *testing.T) {
	err := newStatusError("delete asset", "http://nexus/x", http.StatusNotFound, []byte("missing"))
	wrapped := errors.Wrap(err, "cli")

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsForbidden(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
	assert.Equal(t, KindStatus, KindOf(wrapped))
	assert.Equal(t, "nexus: delete asset: unexpected status 404 Not Found from http://nexus/x: missing", err.Error())

	assert.True(t, IsUnauthorized(newStatusError("op", "", http.StatusUnauthorized, nil)))
	assert.True(t, IsBadRequest(newStatusError("op", "", http.StatusBadRequest, nil)))

	transport := newTransportError("list assets", "http://nexus", io.ErrUnexpectedEOF)
	assert.Equal(t, 0, StatusCode(transport))
	assert.Equal(t, KindTransport, KindOf(transport))
	assert.True(t, errors.Is(transport, io.ErrUnexpectedEOF))
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(transport))

	assert.Equal(t, Kind(0), KindOf(io.EOF))
}

func TestStatusErrorTruncatesBody(t *testing.T) {
	err := newStatusError("op", "", http.StatusInternalServerError, []byte(strings.Repeat("x", 2*maxBodySnippet)))

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Len(t, e.Body, maxBodySnippet+len("..."))
}

func TestInvalidArgumentsAreClientErrors(t *testing.T) {
	c, err := NewClient("http://nexus.invalid")
	require.NoError(t, err)
	ctx := context.Background()

	_, getAssetErr := c.GetAssetInfo(ctx, "")
	_, getComponentErr := c.GetComponentInfo(ctx, "")
	_, searchErr := c.SearchAndDownloadAsset(ctx, Query{}, "f.bin", t.TempDir())
	_, downloadErr := c.Downloader().DownloadAs(ctx, "http://nexus.invalid/f.bin", t.TempDir(), "../f.bin")

	for name, err := range map[string]error{
		"get asset":           getAssetErr,
		"get component":       getComponentErr,
		"delete asset":        c.DeleteAsset(ctx, ""),
		"search and download": searchErr,
		"download as":         downloadErr,
		"upload no repo":      c.UploadComponent(ctx, "", RawUpload("/d")),
		"upload no assets":    c.UploadComponent(ctx, "raw-hosted", RawUpload("/d")),
	} {
		var e *Error
		require.True(t, errors.As(err, &e), name)
		assert.Equal(t, KindInvalid, e.Kind, name)
		assert.ErrorIs(t, err, ErrInvalidArgument, name)
		assert.Equal(t, 0, StatusCode(err), name)
	}
}
