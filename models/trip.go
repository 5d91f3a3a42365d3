// File: models/trip.go
package models

import "time"

// TripStatus tracks a trip through its lifecycle. Transitions only move
// forward: cotizado|sin_tarifa -> asignado|sin_conductor.
type TripStatus string

const (
	TripQuoted            TripStatus = "cotizado"
	TripRouteNotFound     TripStatus = "sin_tarifa"
	TripAssigned          TripStatus = "asignado"
	TripNoDriverAvailable TripStatus = "sin_conductor"
)

// PaymentStatus of a trip. Payment verification and driver assignment are
// independent outcomes: a trip can end up verificado + sin_conductor.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pendiente"
	PaymentVerified PaymentStatus = "verificado"
)

// Trip is one ride request record, from quote to driver assignment.
// BSON field names match the production dataset the bot already runs on.
type Trip struct {
	ID               string        `bson:"id" json:"id"`
	Origin           string        `bson:"origen" json:"origen"`
	Destination      string        `bson:"destino" json:"destino"`
	Passengers       int           `bson:"pasajeros" json:"pasajeros"`
	VehicleClass     VehicleClass  `bson:"tipoVehiculo" json:"tipoVehiculo"`
	PriceLocal       float64       `bson:"precioBs" json:"precioBs"`
	PriceUSD         float64       `bson:"precioUsd" json:"precioUsd"`
	PaymentReference string        `bson:"referenciaPago,omitempty" json:"referenciaPago,omitempty"`
	PaymentStatus    PaymentStatus `bson:"estadoPago" json:"estadoPago"`
	DriverID         string        `bson:"conductorId,omitempty" json:"conductorId,omitempty"`
	Status           TripStatus    `bson:"estado" json:"estado"`
	QuoteError       string        `bson:"motivoError,omitempty" json:"motivoError,omitempty"`
	CreatedAt        time.Time     `bson:"fechaCreacion" json:"fechaCreacion"`
}
