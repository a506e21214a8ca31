package domain

// VehicleStatus represents the status of a physical vehicle unit.
// The booking flow only drives AVAILABLE<->RESERVED transitions;
// the remaining statuses belong to the vehicle movement ledger.
type VehicleStatus string

const (
	VehicleAvailable       VehicleStatus = "AVAILABLE"
	VehicleReserved        VehicleStatus = "RESERVED"
	VehicleOutForTestDrive VehicleStatus = "OUT_FOR_TEST_DRIVE"
	VehicleInTransit       VehicleStatus = "IN_TRANSIT"
	VehicleMaintenance     VehicleStatus = "MAINTENANCE"
	VehicleSold            VehicleStatus = "SOLD"
)

// VehicleUnit represents one physical vehicle at a showroom
// (as opposed to the abstract model/trim it belongs to)
type VehicleUnit struct {
	ID         int64
	ModelID    int64
	ModelName  string
	VIN        string
	ShowroomID int64
	Status     VehicleStatus
}

// IsAvailable returns true if the unit can be allocated to a new booking
func (v *VehicleUnit) IsAvailable() bool {
	return v.Status == VehicleAvailable
}
