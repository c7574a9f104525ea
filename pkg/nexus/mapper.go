package nexus

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/util/jsonutil"
)

// rawPage keeps items undecoded so that a bad entry can be reported by
// index. A missing or null continuationToken leaves the pointer nil.
type rawPage struct {
	Items             []jsonutil.RawMessage `json:"items"`
	ContinuationToken *string               `json:"continuationToken"`
}

func decodePage[T any](body []byte) (*Page[T], error) {
	var raw rawPage
	if err := jsonutil.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "malformed page")
	}

	items, err := decodeItems[T](raw.Items)
	if err != nil {
		return nil, err
	}

	page := &Page[T]{Items: items}
	if raw.ContinuationToken != nil {
		// a blank token cannot be sent back, so it ends the listing too
		page.ContinuationToken = strings.TrimSpace(*raw.ContinuationToken)
	}
	return page, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	var raws []jsonutil.RawMessage
	if err := jsonutil.Unmarshal(body, &raws); err != nil {
		return nil, errors.Wrap(err, "malformed list")
	}
	return decodeItems[T](raws)
}

func decodeItems[T any](raws []jsonutil.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raws))
	for i, raw := range raws {
		var item T
		if err := jsonutil.Unmarshal(raw, &item); err != nil {
			return nil, errors.Wrapf(err, "items[%d]", i)
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeOne[T any](body []byte) (*T, error) {
	var v T
	if err := jsonutil.Unmarshal(body, &v); err != nil {
		return nil, errors.Wrap(err, "malformed entity")
	}
	return &v, nil
}
