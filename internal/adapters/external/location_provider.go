package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"localweather.app/internal/ports"
	"localweather.app/pkg/errors"
)

const ipLookupFields = "status,message,lat,lon"

var coordinatesValidator = validator.New()

// IPLocationProvider implements LocationProvider using an ip-api compatible geolocation endpoint
type IPLocationProvider struct {
	lookupURL string
	client    HTTPClient
	logger    ports.Logger
}

// IPLocationProviderParams holds parameters for creating the IP location provider
type IPLocationProviderParams struct {
	LookupURL string
	Timeout   time.Duration
	Client    HTTPClient
	Logger    ports.Logger
}

type ipLookupPayload struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPLocationProvider creates a new IP-based location provider
func NewIPLocationProvider(params IPLocationProviderParams) *IPLocationProvider {
	lookupURL := params.LookupURL
	if lookupURL == "" {
		lookupURL = "http://ip-api.com/json"
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &IPLocationProvider{
		lookupURL: lookupURL,
		client:    client,
		logger:    params.Logger,
	}
}

// GetCurrentLocation resolves the host's public address to coordinates
func (p *IPLocationProvider) GetCurrentLocation(ctx context.Context) (ports.Coordinates, error) {
	endpoint := fmt.Sprintf("%s?%s", p.lookupURL, url.Values{"fields": {ipLookupFields}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Coordinates{}, errors.NewLocationUnavailableError("failed to build location request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ports.Coordinates{}, errors.NewLocationUnavailableError("location lookup failed", err)
	}
	defer closeBody(resp.Body, p.logger, "ip-location")

	if resp.StatusCode != http.StatusOK {
		return ports.Coordinates{}, errors.NewLocationUnavailableError(
			fmt.Sprintf("location lookup returned status %d", resp.StatusCode), nil)
	}

	var payload ipLookupPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.Coordinates{}, errors.NewLocationUnavailableError("failed to decode location response", err)
	}
	if payload.Status != "success" {
		return ports.Coordinates{}, errors.NewLocationUnavailableError(
			fmt.Sprintf("location lookup failed: %s", payload.Message), nil)
	}

	coords := ports.Coordinates{Latitude: payload.Lat, Longitude: payload.Lon}
	if err := coordinatesValidator.Struct(coords); err != nil {
		return ports.Coordinates{}, errors.NewLocationUnavailableError("location lookup returned invalid coordinates", err)
	}

	p.logger.Debug("Resolved location from IP", ports.F("coordinates", coords.String()))
	return coords, nil
}

// StaticLocationProvider implements LocationProvider with a fixed position
type StaticLocationProvider struct {
	coords ports.Coordinates
}

// NewStaticLocationProvider creates a location provider that always reports coords
func NewStaticLocationProvider(coords ports.Coordinates) (*StaticLocationProvider, error) {
	if err := coordinatesValidator.Struct(coords); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid static coordinates %s", coords))
	}
	return &StaticLocationProvider{coords: coords}, nil
}

func (p *StaticLocationProvider) GetCurrentLocation(ctx context.Context) (ports.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return ports.Coordinates{}, errors.NewLocationUnavailableError("location request cancelled", err)
	}
	return p.coords, nil
}

// LocationServicesGuard turns location services on before delegating a location request
type LocationServicesGuard struct {
	provider ports.LocationProvider
	services ports.LocationServices
	logger   ports.Logger
}

// NewLocationServicesGuard creates a guard around provider
func NewLocationServicesGuard(provider ports.LocationProvider, services ports.LocationServices, logger ports.Logger) *LocationServicesGuard {
	return &LocationServicesGuard{
		provider: provider,
		services: services,
		logger:   logger,
	}
}

func (g *LocationServicesGuard) GetCurrentLocation(ctx context.Context) (ports.Coordinates, error) {
	if !g.services.Enabled(ctx) {
		g.logger.Info("Location services disabled, requesting enable")
		if err := g.services.Enable(ctx); err != nil {
			if errors.TypeOf(err) == errors.ErrorTypeLocationUnavailable {
				return ports.Coordinates{}, err
			}
			return ports.Coordinates{}, errors.NewLocationUnavailableError("failed to enable location services", err)
		}
	}
	return g.provider.GetCurrentLocation(ctx)
}
