package helper

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
	"timeservice/internal/common/enum"
)

type HTTPAPIResponse struct {
	StatusCode int         `json:"status_code"`
	Headers    http.Header `json:"headers"`
	Body       []byte      `json:"body"`
}

type HTTPRequestPayload struct {
	Method enum.HTTPMethodEnum
	URL    string
	Params map[string]string
}

type HTTPRequestConfig struct {
	Ctx     context.Context
	Headers http.Header
	Timeout time.Duration
}

// HTTPRequest issues an outbound call and hands back the raw body so the
// caller decides how to decode it. A transport-level failure returns a nil
// response; a non-2xx status is not an error here.
func HTTPRequest(
	payload *HTTPRequestPayload,
	config *HTTPRequestConfig,
) (*HTTPAPIResponse, error) {
	req, client, err := prepareRequest(payload, config)
	if err != nil {
		return nil, err
	}
	return executeRequest(req, client)
}

func prepareRequest(payload *HTTPRequestPayload, config *HTTPRequestConfig) (*http.Request, *http.Client, error) {
	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, payload.Method.ToString(), payload.URL, nil)
	if err != nil {
		return nil, nil, err
	}

	if len(payload.Params) > 0 {
		query := url.Values{}
		for key, value := range payload.Params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	for key, values := range config.Headers {
		req.Header[key] = append(req.Header[key], values...)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", enum.ApplicationJSON.ToString())
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 1 * time.Minute
	}
	client := &http.Client{Timeout: timeout}

	return req, client, nil
}

func executeRequest(req *http.Request, client *http.Client) (*HTTPAPIResponse, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &HTTPAPIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
