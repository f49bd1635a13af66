// README: Shared value types used across modules.
package types

// ID is an opaque entity identifier (UUID string in this deployment).
type ID string

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
