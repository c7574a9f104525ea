package nexus

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
)

// UploadAsset is one file part of a component upload.
type UploadAsset struct {
	// Field is the multipart field name, e.g. "raw.asset1" or "maven2.asset1".
	Field    string
	FileName string
	Content  io.Reader
}

// UploadComponentRequest is the multipart body of a component upload. Field
// names are format specific, see the "Upload Component" section of the
// Nexus REST API documentation.
type UploadComponentRequest struct {
	Fields map[string]string
	Assets []UploadAsset
}

// RawUpload builds the request for a raw repository: every asset lands in
// directory under its FileName.
func RawUpload(directory string, assets ...UploadAsset) UploadComponentRequest {
	req := UploadComponentRequest{
		Fields: map[string]string{"raw.directory": directory},
		Assets: make([]UploadAsset, 0, len(assets)),
	}
	for i, a := range assets {
		field := fmt.Sprintf("raw.asset%d", i+1)
		req.Fields[field+".filename"] = a.FileName
		req.Assets = append(req.Assets, UploadAsset{
			Field:    field,
			FileName: a.FileName,
			Content:  a.Content,
		})
	}
	return req
}

// UploadComponent posts a new component to repository. Upload bodies are
// streams, so the legacy path fallback does not apply here.
func (c *Client) UploadComponent(ctx context.Context, repository string, upload UploadComponentRequest) error {
	const op = "upload component"
	if repository == "" {
		return newInvalidError(op, "repository is required")
	}
	if len(upload.Assets) == 0 {
		return newInvalidError(op, "at least one asset is required")
	}

	req := c.rest.R().
		SetContext(ctx).
		SetQueryParam("repository", repository).
		SetMultipartFormData(upload.Fields)
	for _, a := range upload.Assets {
		req.SetFileReader(a.Field, a.FileName, a.Content)
	}

	resp, err := req.Execute(http.MethodPost, pathComponents)
	if err != nil {
		return newTransportError(op, c.baseURL+pathComponents, err)
	}
	if !resp.IsSuccess() {
		return newStatusError(op, resp.Request.URL, resp.StatusCode(), resp.Body())
	}

	c.logger.Debug("Uploaded component",
		logfields.String("repository", repository),
		logfields.Int("assets", len(upload.Assets)))
	return nil
}
