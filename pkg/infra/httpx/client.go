package httpx

import "net/http"

// Client abstracts the HTTP transport so gateway calls can be mocked.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
