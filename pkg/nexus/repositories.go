package nexus

import (
	"context"
)

// ListRepositories returns every repository visible to the caller.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	const op = "list repositories"

	body, reqURL, err := c.get(ctx, op, pathRepositories, nil, nil)
	if err != nil {
		return nil, err
	}
	repos, err := decodeList[Repository](body)
	if err != nil {
		return nil, newDecodeError(op, reqURL, err)
	}
	return repos, nil
}
