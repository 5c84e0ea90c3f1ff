package registry

import (
	"context"
	goerrors "errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/go-resty/resty/v2"
)

// HTTPTransport talks to the registry over HTTP. All protocol requests
// are POSTs with a JSON body, so a single method covers the whole API.
type HTTPTransport struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPTransport creates a transport for the server at baseURL.
func NewHTTPTransport(baseURL, clientVersion string, timeout time.Duration) *HTTPTransport {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "ASMP/"+clientVersion)

	return &HTTPTransport{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Post sends payload to the endpoint and returns the response body.
// Non-200 statuses are reported as ErrTransport.
func (t *HTTPTransport) Post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(t.baseURL + endpoint)
	if err != nil {
		return nil, classifyNetworkError(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Wrapf(ErrTransport, "unexpected status code: %d", resp.StatusCode())
	}

	return resp.Body(), nil
}

// classifyNetworkError maps a raw transport failure onto the sentinel
// errors callers branch on. Timeouts and unreachable servers get their
// own classes, everything else is a generic transport failure.
func classifyNetworkError(err error) error {
	var netErr net.Error
	if goerrors.Is(err, context.DeadlineExceeded) || (goerrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrap(ErrTimeout, err.Error())
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if goerrors.As(err, &opErr) || goerrors.As(err, &dnsErr) {
		return errors.Wrap(ErrNoConnection, err.Error())
	}

	return errors.Wrap(ErrTransport, err.Error())
}
