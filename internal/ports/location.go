package ports

import (
	"context"
	"fmt"
)

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lon" validate:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// LocationProvider defines the contract for obtaining the current position
type LocationProvider interface {
	GetCurrentLocation(ctx context.Context) (Coordinates, error)
}

// LocationServices defines the contract for the platform location-services switch
type LocationServices interface {
	Enabled(ctx context.Context) bool
	Enable(ctx context.Context) error
}
