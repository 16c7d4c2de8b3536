package view

import (
	"strconv"

	"parkview/internal/models"
	"parkview/internal/store"
)

// NotAvailable is the sentinel shown for any foreign key that does not
// resolve against the loaded snapshots.
const NotAvailable = "N/A"

// SlotInfo is the display triple for a parking slot. All three fields are
// the sentinel when the slot id resolves nowhere.
type SlotInfo struct {
	LotName    string
	LotStreet  string
	SlotNumber string
}

// Correlator resolves a booking's foreign keys against the snapshots loaded
// for one view activation. Every miss is absorbed into a sentinel; a
// dangling reference is never an error.
type Correlator struct {
	vehicles store.VehicleSnapshot
	lots     store.LotSnapshot
	users    store.UserSnapshot
}

func NewCorrelator(vehicles store.VehicleSnapshot, lots store.LotSnapshot, users store.UserSnapshot) *Correlator {
	return &Correlator{vehicles: vehicles, lots: lots, users: users}
}

// Vehicle looks up a vehicle by id.
func (c *Correlator) Vehicle(id int) (models.Vehicle, bool) {
	return c.vehicles.Lookup(id)
}

// LicensePlate resolves a vehicle id to its plate, or the sentinel.
func (c *Correlator) LicensePlate(id int) string {
	v, ok := c.vehicles.Lookup(id)
	if !ok {
		return NotAvailable
	}
	return v.LicensePlate
}

// Slot resolves a parking slot id to its lot name, lot street and slot
// number.
func (c *Correlator) Slot(id int) SlotInfo {
	ref, ok := c.lots.ResolveSlot(id)
	if !ok {
		return SlotInfo{LotName: NotAvailable, LotStreet: NotAvailable, SlotNumber: NotAvailable}
	}

	return SlotInfo{
		LotName:    ref.LotName,
		LotStreet:  ref.LotStreet,
		SlotNumber: strconv.Itoa(ref.SlotNumber),
	}
}

// UserEmail resolves a user id to an email, or the sentinel.
func (c *Correlator) UserEmail(id int) string {
	u, ok := c.users.Lookup(id)
	if !ok {
		return NotAvailable
	}
	return u.Email
}

// OwnerEmail resolves the email of the user owning the given vehicle. The
// admin table shows whose vehicle occupies the slot, not who created the
// booking, so the chain is vehicle → owner → email.
func (c *Correlator) OwnerEmail(vehicleID int) string {
	v, ok := c.vehicles.Lookup(vehicleID)
	if !ok {
		return NotAvailable
	}
	return c.UserEmail(v.IDUser)
}
