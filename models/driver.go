// File: models/driver.go
package models

// DriverStatus is the availability of a driver in the pool.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "disponible"
	DriverBusy      DriverStatus = "ocupado"
)

// Driver is a driver resource. Availability flips disponible -> ocupado
// exactly once per successful claim; all mutation goes through the
// allocator's atomic claim, never a separate read + write.
type Driver struct {
	ID     string       `bson:"id" json:"id"`
	Name   string       `bson:"nombre" json:"nombre"`
	Phone  string       `bson:"telefono" json:"telefono"`
	Status DriverStatus `bson:"estado" json:"estado"`
}
