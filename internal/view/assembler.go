package view

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"parkview/internal/lib/logger/sl"
	"parkview/internal/models"
	"parkview/internal/store"
)

// Caller is the identity the view is assembled for. Admin decides scoping
// and the user-email column; the privilege itself comes from an external
// collaborator.
type Caller struct {
	ID    int
	Admin bool
}

// Source is the snapshot loader the assembler pulls from. Satisfied by
// *store.Store.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Source
type Source interface {
	Vehicles(ctx context.Context, ownerID int) (store.VehicleSnapshot, error)
	ParkingLots(ctx context.Context) (store.LotSnapshot, error)
	Users(ctx context.Context) (store.UserSnapshot, error)
	Bookings(ctx context.Context, params url.Values) ([]models.Booking, error)
}

// Assembler builds one fully resolved bookings view per call. Nothing is
// cached between calls; every Assemble re-fetches all snapshots.
type Assembler struct {
	log    *slog.Logger
	src    Source
	conv   TimeConverter
	caller Caller
	mode   Mode
}

func NewAssembler(log *slog.Logger, src Source, mode Mode, caller Caller, loc *time.Location) *Assembler {
	return &Assembler{
		log:    log,
		src:    src,
		conv:   NewTimeConverter(loc),
		caller: caller,
		mode:   mode,
	}
}

// Assemble loads the entity snapshots in sequence, then walks the bookings
// in server order producing resolved, timezone-corrected rows. A failed
// vehicle, lot or user load degrades to sentinels in the affected columns;
// a failed bookings load returns an empty view plus an error, so callers
// can tell "no bookings" from "could not load bookings".
func (a *Assembler) Assemble(ctx context.Context) (*View, error) {
	const op = "view.Assembler.Assemble"

	log := a.log.With(slog.String("op", op), slog.String("mode", a.mode.String()))

	ownerScope := a.caller.ID
	if a.caller.Admin {
		ownerScope = 0
	}

	vehicles, err := a.src.Vehicles(ctx, ownerScope)
	if err != nil {
		log.Error("failed to load vehicles", sl.Err(err))
	}

	lots, err := a.src.ParkingLots(ctx)
	if err != nil {
		log.Error("failed to load parking lots", sl.Err(err))
	}

	var users store.UserSnapshot
	if a.caller.Admin {
		users, err = a.src.Users(ctx)
		if err != nil {
			log.Error("failed to load users", sl.Err(err))
		}
	}

	corr := NewCorrelator(vehicles, lots, users)

	now := time.Now().UTC()
	filter := NewFilter(a.mode, a.caller.ID, a.caller.Admin)

	vw := &View{
		Title:   a.mode.Title(),
		Mode:    a.mode,
		Admin:   a.caller.Admin,
		Columns: Columns(a.caller.Admin),
		corr:    corr,
	}

	bookings, err := a.src.Bookings(ctx, filter.Params(now))
	if err != nil {
		log.Error("failed to load bookings", sl.Err(err))
		return vw, fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range bookings {
		if !filter.Retain(b, now) {
			continue
		}

		local := a.localize(b)
		slot := corr.Slot(b.IDParkingSlot)

		row := Row{
			BookingID:    b.ID,
			Start:        local.DatetimeStart,
			End:          local.DatetimeEnd,
			LicensePlate: corr.LicensePlate(b.IDVehicle),
			LotName:      slot.LotName,
			SlotNumber:   slot.SlotNumber,
		}
		if a.caller.Admin {
			row.UserEmail = corr.OwnerEmail(b.IDVehicle)
		}

		vw.Rows = append(vw.Rows, row)
		vw.bookings = append(vw.bookings, local)
	}

	log.Info("view assembled",
		slog.Int("fetched", len(bookings)), slog.Int("rows", len(vw.Rows)))

	return vw, nil
}

// localize returns a copy of the booking with its four timestamp fields
// converted to the display zone. Absent entry/exit times stay absent; a
// value that fails to parse is shown raw rather than dropped.
func (a *Assembler) localize(b models.Booking) models.Booking {
	b.DatetimeStart = a.toLocal(b.DatetimeStart)
	b.DatetimeEnd = a.toLocal(b.DatetimeEnd)
	if b.EntryTime != "" {
		b.EntryTime = a.toLocal(b.EntryTime)
	}
	if b.ExitTime != "" {
		b.ExitTime = a.toLocal(b.ExitTime)
	}
	return b
}

func (a *Assembler) toLocal(ts string) string {
	local, err := a.conv.ToLocal(ts)
	if err != nil {
		a.log.Warn("unparseable timestamp", slog.String("value", ts), sl.Err(err))
		return ts
	}
	return local
}

// View is one assembled bookings table: ordered rows plus the row-aligned
// backing bookings used by the detail workflow.
type View struct {
	Title   string
	Mode    Mode
	Admin   bool
	Columns []Column
	Rows    []Row

	bookings []models.Booking
	corr     *Correlator
}

// Booking returns the localized booking backing the given row.
func (v *View) Booking(rowIndex int) (models.Booking, bool) {
	if rowIndex < 0 || rowIndex >= len(v.bookings) {
		return models.Booking{}, false
	}
	return v.bookings[rowIndex], true
}

// VehicleInfo is the optional vehicle block of a detail view.
type VehicleInfo struct {
	LicensePlate string
	Brand        string
	Model        string
}

// BookingDetails is everything the detail view renders for one row.
// Vehicle is nil when the booking has no resolvable vehicle, in which case
// the vehicle block is omitted entirely.
type BookingDetails struct {
	BookingID int
	Start     string
	End       string
	EntryTime string
	ExitTime  string
	Amount    float64
	Note      string
	Vehicle   *VehicleInfo
	Slot      SlotInfo
}

// Details resolves the full detail payload for one row.
func (v *View) Details(rowIndex int) (*BookingDetails, bool) {
	b, ok := v.Booking(rowIndex)
	if !ok {
		return nil, false
	}

	d := &BookingDetails{
		BookingID: b.ID,
		Start:     b.DatetimeStart,
		End:       b.DatetimeEnd,
		EntryTime: b.EntryTime,
		ExitTime:  b.ExitTime,
		Amount:    b.Amount,
		Note:      b.Note,
		Slot:      v.corr.Slot(b.IDParkingSlot),
	}

	if vehicle, ok := v.corr.Vehicle(b.IDVehicle); ok {
		d.Vehicle = &VehicleInfo{
			LicensePlate: vehicle.LicensePlate,
			Brand:        vehicle.Brand,
			Model:        vehicle.Model,
		}
	}

	return d, true
}
