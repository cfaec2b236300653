package external

import (
	"io"
	"net/http"

	"localweather.app/internal/ports"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func closeBody(body io.Closer, logger ports.Logger, source string) {
	if err := body.Close(); err != nil {
		logger.Warn("Failed to close response body", ports.F("source", source), ports.F("error", err))
	}
}
