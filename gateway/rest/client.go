// Package rest implements the core Repository interfaces against the remote
// academic records API. It is the only place registra touches the network.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core"
)

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(conf *core.Config) (*Client, error) {
	base, err := url.Parse(conf.API.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing API base URL %q", conf.API.BaseURL)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: conf.API.Timeout},
	}, nil
}

// apiError is the backend's failure body: `error` for a single message,
// `errores` for a validation list.
type apiError struct {
	Error  string   `json:"error"`
	Errors []string `json:"errores"`
}

// createResponse is the backend's creation acknowledgment.
type createResponse struct {
	Message string `json:"mensaje"`
	ID      int    `json:"id"`
}

// do performs one JSON round-trip. A non-2xx response becomes a
// *core.RemoteError carrying the backend's message(s); a failure to get any
// response at all stays a plain wrapped error so callers can tell a server
// rejection from a dead connection.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := *c.baseURL
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encoding %s %s body", method, path)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return errors.Wrapf(err, "building %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s %s response", method, path)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if err := json.Unmarshal(data, &apiErr); err == nil {
			if len(apiErr.Errors) > 0 {
				return core.NewRemoteError(res.StatusCode, apiErr.Errors...)
			}
			if apiErr.Error != "" {
				return core.NewRemoteError(res.StatusCode, apiErr.Error)
			}
		}
		return core.NewRemoteError(res.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}
