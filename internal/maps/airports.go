// README: Static IATA airport coordinates consulted before the network geocoder.
package maps

import "flanvo/internal/types"

// AirportTable maps upper-case IATA codes to known coordinates. It is
// injected into the geocoder so tests and common airports skip the network.
type AirportTable map[string]Location

// DefaultAirports covers the airports the service launched with. Codes not
// listed here fall through to the geocoding provider.
var DefaultAirports = AirportTable{
	"FCO": {Point: types.Point{Lat: 41.8003, Lon: 12.2389}, Label: "Rome Fiumicino Airport"},
	"CIA": {Point: types.Point{Lat: 41.7994, Lon: 12.5949}, Label: "Rome Ciampino Airport"},
	"MXP": {Point: types.Point{Lat: 45.6306, Lon: 8.7281}, Label: "Milan Malpensa Airport"},
	"LIN": {Point: types.Point{Lat: 45.4451, Lon: 9.2767}, Label: "Milan Linate Airport"},
	"BGY": {Point: types.Point{Lat: 45.6739, Lon: 9.7042}, Label: "Milan Bergamo Airport"},
	"NAP": {Point: types.Point{Lat: 40.8860, Lon: 14.2908}, Label: "Naples Airport"},
	"CTA": {Point: types.Point{Lat: 37.4668, Lon: 15.0664}, Label: "Catania Airport"},
	"PMO": {Point: types.Point{Lat: 38.1759, Lon: 13.0910}, Label: "Palermo Airport"},
	"VCE": {Point: types.Point{Lat: 45.5053, Lon: 12.3519}, Label: "Venice Marco Polo Airport"},
	"BLQ": {Point: types.Point{Lat: 44.5354, Lon: 11.2887}, Label: "Bologna Airport"},
}
