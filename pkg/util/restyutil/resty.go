package restyutil

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/coding-wepack/nexusctl/pkg/log"
)

// New returns a resty client rooted at baseURL that speaks JSON and never
// retries. The round tripper of hc is reused; hc itself is not modified.
func New(baseURL string, hc *http.Client) *resty.Client {
	inner := &http.Client{}
	if hc != nil {
		inner.Transport = hc.Transport
		inner.Timeout = hc.Timeout
		inner.Jar = hc.Jar
	}

	return resty.NewWithClient(inner).
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetDisableWarn(true).
		SetLogger(log.Named("resty").SugaredLogger())
}

// QueryValues drops empty values, so that absent filters never reach the
// server as "key=".
func QueryValues(params map[string]string) url.Values {
	values := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	return values
}
