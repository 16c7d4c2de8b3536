package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"parkview/internal/lib/logger/sl"
	"parkview/internal/models"
)

// Remote is the piece of the HTTP session the store needs. Satisfied by
// *upark.Session.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Remote
type Remote interface {
	GetList(ctx context.Context, path string, params url.Values, v any) error
	Delete(ctx context.Context, path string) (string, error)
}

// Store loads entity collections from the remote service and indexes them by
// id. Every load is one fresh round trip; snapshots carry no state between
// view activations.
type Store struct {
	log    *slog.Logger
	remote Remote
}

func New(log *slog.Logger, remote Remote) *Store {
	return &Store{log: log, remote: remote}
}

// VehicleSnapshot indexes vehicles by id.
type VehicleSnapshot struct {
	byID map[int]models.Vehicle
}

func NewVehicleSnapshot(vehicles []models.Vehicle) VehicleSnapshot {
	snap := VehicleSnapshot{byID: make(map[int]models.Vehicle, len(vehicles))}
	for _, v := range vehicles {
		snap.byID[v.ID] = v
	}
	return snap
}

func (s VehicleSnapshot) Lookup(id int) (models.Vehicle, bool) {
	v, ok := s.byID[id]
	return v, ok
}

// SlotRef is the display-ready location of one parking slot.
type SlotRef struct {
	LotName    string
	LotStreet  string
	SlotNumber int
}

// LotSnapshot holds the loaded parking lots plus a slotID→location index
// built once at load time, so slot resolution never rescans the lots.
type LotSnapshot struct {
	lots    []models.ParkingLot
	slotIdx map[int]SlotRef
}

func NewLotSnapshot(lots []models.ParkingLot) LotSnapshot {
	snap := LotSnapshot{lots: lots, slotIdx: make(map[int]SlotRef)}
	for _, lot := range lots {
		for _, slot := range lot.Slots {
			snap.slotIdx[slot.ID] = SlotRef{
				LotName:    lot.Name,
				LotStreet:  lot.Street,
				SlotNumber: slot.Number,
			}
		}
	}
	return snap
}

func (s LotSnapshot) ResolveSlot(id int) (SlotRef, bool) {
	ref, ok := s.slotIdx[id]
	return ref, ok
}

// Lots returns the loaded lots with their slots, in server order.
func (s LotSnapshot) Lots() []models.ParkingLot { return s.lots }

// UserSnapshot indexes users by id.
type UserSnapshot struct {
	byID map[int]models.User
}

func NewUserSnapshot(users []models.User) UserSnapshot {
	snap := UserSnapshot{byID: make(map[int]models.User, len(users))}
	for _, u := range users {
		snap.byID[u.ID] = u
	}
	return snap
}

func (s UserSnapshot) Lookup(id int) (models.User, bool) {
	u, ok := s.byID[id]
	return u, ok
}

// Vehicles loads the vehicle collection. ownerID 0 requests every vehicle
// (admin scope); any other value requests only that user's vehicles.
func (s *Store) Vehicles(ctx context.Context, ownerID int) (VehicleSnapshot, error) {
	const op = "store.Vehicles"

	path := "vehicles"
	if ownerID != 0 {
		path = "users/" + strconv.Itoa(ownerID) + "/vehicles"
	}

	var vehicles []models.Vehicle
	if err := s.remote.GetList(ctx, path, nil, &vehicles); err != nil {
		return VehicleSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("vehicles loaded", slog.Int("count", len(vehicles)))

	return NewVehicleSnapshot(vehicles), nil
}

// ParkingLots loads every parking lot, then each lot's slots. A lot whose
// slot fetch fails keeps an empty slot list rather than aborting the load.
func (s *Store) ParkingLots(ctx context.Context) (LotSnapshot, error) {
	const op = "store.ParkingLots"

	var lots []models.ParkingLot
	if err := s.remote.GetList(ctx, "parking_lots", nil, &lots); err != nil {
		return LotSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	for i := range lots {
		lot := &lots[i]

		var slots []models.ParkingSlot
		err := s.remote.GetList(ctx, "parking_lots/"+strconv.Itoa(lot.ID)+"/parking_slots", nil, &slots)
		if err != nil {
			s.log.Warn("failed to load parking slots",
				slog.Int("parking_lot_id", lot.ID), sl.Err(err))
			continue
		}

		lot.Slots = slots
	}

	snap := NewLotSnapshot(lots)

	s.log.Debug("parking lots loaded",
		slog.Int("lots", len(lots)), slog.Int("slots", len(snap.slotIdx)))

	return snap, nil
}

// Users loads the full user collection. Only privileged callers ever need
// this; regular callers never see bookings outside their own.
func (s *Store) Users(ctx context.Context) (UserSnapshot, error) {
	const op = "store.Users"

	var users []models.User
	if err := s.remote.GetList(ctx, "users", nil, &users); err != nil {
		return UserSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("users loaded", slog.Int("count", len(users)))

	return NewUserSnapshot(users), nil
}

// Bookings loads bookings with the given query parameters, preserving server
// order. A zero-length result is valid and distinct from a failed fetch.
func (s *Store) Bookings(ctx context.Context, params url.Values) ([]models.Booking, error) {
	const op = "store.Bookings"

	var bookings []models.Booking
	if err := s.remote.GetList(ctx, "bookings", params, &bookings); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("bookings loaded", slog.Int("count", len(bookings)))

	return bookings, nil
}

// DeleteBooking removes one booking server-side and returns the server's
// response text verbatim.
func (s *Store) DeleteBooking(ctx context.Context, id int) (string, error) {
	const op = "store.DeleteBooking"

	msg, err := s.remote.Delete(ctx, "bookings/"+strconv.Itoa(id))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}
