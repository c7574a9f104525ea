package nexus

import (
	"context"

	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/util/restyutil"
)

// ListComponentsPage returns a single page of the components in repository.
func (c *Client) ListComponentsPage(ctx context.Context, repository, continuationToken string) (*Page[Component], error) {
	query := restyutil.QueryValues(map[string]string{"repository": repository})
	return fetchPage[Component](ctx, c, "list components", pathComponents, query, continuationToken)
}

// ListComponents returns all components in repository in server order.
func (c *Client) ListComponents(ctx context.Context, repository string) ([]Component, error) {
	return paginate(ctx, c, "list components", func(ctx context.Context, token string) (*Page[Component], error) {
		return c.ListComponentsPage(ctx, repository, token)
	})
}

// SearchComponentsPage returns a single page of the components matching q.
func (c *Client) SearchComponentsPage(ctx context.Context, q Query, continuationToken string) (*Page[Component], error) {
	return fetchPage[Component](ctx, c, "search components", pathSearchComponents, q.Values(), continuationToken)
}

// SearchComponents returns all components matching q.
func (c *Client) SearchComponents(ctx context.Context, q Query) ([]Component, error) {
	return paginate(ctx, c, "search components", func(ctx context.Context, token string) (*Page[Component], error) {
		return c.SearchComponentsPage(ctx, q, token)
	})
}

// GetComponentInfo returns the component with the given id and its assets.
func (c *Client) GetComponentInfo(ctx context.Context, id string) (*Component, error) {
	const op = "get component"
	if id == "" {
		return nil, newInvalidError(op, "id is required")
	}

	body, reqURL, err := c.get(ctx, op, pathComponent, map[string]string{"id": id}, nil)
	if err != nil {
		return nil, err
	}
	component, err := decodeOne[Component](body)
	if err != nil {
		return nil, newDecodeError(op, reqURL, err)
	}
	return component, nil
}

// GetComponent downloads every asset of the component into dir, returning
// the written paths in asset order. It stops at the first failed asset.
func (c *Client) GetComponent(ctx context.Context, id, dir string) ([]string, error) {
	component, err := c.GetComponentInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Downloading component",
		logfields.String("id", id),
		logfields.Int("assets", len(component.Assets)),
		logfields.String("dir", dir))

	return c.downloader.DownloadAll(ctx, component.Assets, dir)
}

// DeleteComponent removes the component with the given id and all of its
// assets.
func (c *Client) DeleteComponent(ctx context.Context, id string) error {
	return c.delete(ctx, "delete component", pathComponent, id)
}
