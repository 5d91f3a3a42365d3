package models

import "testing"

func TestVehicleClassFor(t *testing.T) {
	tests := []struct {
		passengers int
		want       VehicleClass
	}{
		{0, VehicleMoto},
		{1, VehicleMoto},
		{2, VehicleCarro},
		{3, VehicleCarro},
		{10, VehicleCarro},
		{-1, VehicleMoto},
	}
	for _, tt := range tests {
		if got := VehicleClassFor(tt.passengers); got != tt.want {
			t.Errorf("VehicleClassFor(%d): got %s, want %s", tt.passengers, got, tt.want)
		}
	}
}
