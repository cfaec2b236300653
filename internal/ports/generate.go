// Package ports declares what the weather view needs from the outside world:
// settings, connectivity, position, the weather upstream, permission and rendering.
//
//go:generate mockery
package ports
