package service

import (
	"context"
	"net/http"
	"time"
)

// httpLibrarianVerifier calls the external credential endpoint used when a
// librarian account registers. Any 2xx answer counts as verified.
type httpLibrarianVerifier struct {
	url    string
	token  string
	client *http.Client
}

func NewHTTPLibrarianVerifier(url, token string) LibrarianVerifier {
	return &httpLibrarianVerifier{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *httpLibrarianVerifier) Verify(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return false, err
	}
	if v.token != "" {
		req.Header.Set("Authorization", v.token)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
