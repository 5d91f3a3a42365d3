// File: models/fare.go
package models

// VehicleClass is derived from the passenger count, never chosen by the
// user or persisted as a preference.
type VehicleClass string

const (
	VehicleMoto  VehicleClass = "Moto"
	VehicleCarro VehicleClass = "Carro"
)

// VehicleClassFor derives the vehicle class: more than one passenger needs
// a car, anything else (including a defaulted single passenger) rides a moto.
func VehicleClassFor(passengers int) VehicleClass {
	if passengers > 1 {
		return VehicleCarro
	}
	return VehicleMoto
}

// FareEntry is static reference pricing for one route within a vehicle-class
// partition. Read-only from the workflow's perspective.
type FareEntry struct {
	Origin      string  `bson:"origen" json:"origen"`
	Destination string  `bson:"destino" json:"destino"`
	Price       float64 `bson:"precio" json:"precio"`
}
