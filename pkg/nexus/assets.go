package nexus

import (
	"context"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/util/restyutil"
)

// ListAssetsPage returns a single page of the assets in repository.
func (c *Client) ListAssetsPage(ctx context.Context, repository, continuationToken string) (*Page[Asset], error) {
	query := restyutil.QueryValues(map[string]string{"repository": repository})
	return fetchPage[Asset](ctx, c, "list assets", pathAssets, query, continuationToken)
}

// ListAssets returns all assets in repository, following continuation
// tokens until the last page.
func (c *Client) ListAssets(ctx context.Context, repository string) ([]Asset, error) {
	return paginate(ctx, c, "list assets", func(ctx context.Context, token string) (*Page[Asset], error) {
		return c.ListAssetsPage(ctx, repository, token)
	})
}

// SearchAssetsPage returns a single page of the assets matching q.
func (c *Client) SearchAssetsPage(ctx context.Context, q Query, continuationToken string) (*Page[Asset], error) {
	return fetchPage[Asset](ctx, c, "search assets", pathSearchAssets, q.Values(), continuationToken)
}

// SearchAssets returns all assets matching q. No match is an empty slice.
func (c *Client) SearchAssets(ctx context.Context, q Query) ([]Asset, error) {
	return paginate(ctx, c, "search assets", func(ctx context.Context, token string) (*Page[Asset], error) {
		return c.SearchAssetsPage(ctx, q, token)
	})
}

// GetAssetInfo returns the metadata of the asset with the given id.
func (c *Client) GetAssetInfo(ctx context.Context, id string) (*Asset, error) {
	const op = "get asset"
	if id == "" {
		return nil, newInvalidError(op, "id is required")
	}

	body, reqURL, err := c.get(ctx, op, pathAsset, map[string]string{"id": id}, nil)
	if err != nil {
		return nil, err
	}
	asset, err := decodeOne[Asset](body)
	if err != nil {
		return nil, newDecodeError(op, reqURL, err)
	}
	return asset, nil
}

// GetAsset downloads the asset with the given id into dir and returns the
// path of the written file.
func (c *Client) GetAsset(ctx context.Context, id, dir string) (string, error) {
	asset, err := c.GetAssetInfo(ctx, id)
	if err != nil {
		return "", err
	}
	if asset.DownloadURL == "" {
		return "", newDecodeError("get asset", c.baseURL, errors.Errorf("asset %s has no downloadUrl", id))
	}
	return c.downloader.Download(ctx, asset.DownloadURL, dir)
}

// DeleteAsset removes the asset with the given id.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.delete(ctx, "delete asset", pathAsset, id)
}

// SearchAndDownloadAsset downloads the single asset matching q into dir
// under fileName. The server redirects to the asset; it answers 400 when q
// matches more than one asset and 404 when it matches none.
func (c *Client) SearchAndDownloadAsset(ctx context.Context, q Query, fileName, dir string) (string, error) {
	if q.IsEmpty() {
		return "", newInvalidError("search and download", "empty query")
	}

	u := c.baseURL + pathSearchAssetDownload + "?" + q.Values().Encode()
	return c.downloader.DownloadAs(ctx, u, dir, fileName)
}
