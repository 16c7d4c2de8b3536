package store

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkview/internal/lib/logger/handlers/slogdiscard"
	"parkview/internal/models"
	"parkview/internal/store/mocks"
)

func TestStoreVehiclesScoping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		ownerID  int
		wantPath string
	}{
		{name: "admin scope loads every vehicle", ownerID: 0, wantPath: "vehicles"},
		{name: "regular scope loads own vehicles", ownerID: 7, wantPath: "users/7/vehicles"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remote := mocks.NewRemote(t)
			remote.On("GetList", mock.Anything, tc.wantPath, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					out := args.Get(3).(*[]models.Vehicle)
					*out = []models.Vehicle{{ID: 1, LicensePlate: "AB123CD"}}
				}).
				Return(nil)

			s := New(slogdiscard.NewDiscardLogger(), remote)

			snap, err := s.Vehicles(context.Background(), tc.ownerID)
			require.NoError(t, err)

			v, ok := snap.Lookup(1)
			require.True(t, ok)
			assert.Equal(t, "AB123CD", v.LicensePlate)

			_, ok = snap.Lookup(2)
			assert.False(t, ok)
		})
	}
}

func TestStoreVehiclesFetchFailed(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemote(t)
	remote.On("GetList", mock.Anything, "vehicles", mock.Anything, mock.Anything).
		Return(errors.New("boom"))

	s := New(slogdiscard.NewDiscardLogger(), remote)

	_, err := s.Vehicles(context.Background(), 0)
	require.Error(t, err)
}

func TestStoreParkingLotsBuildsSlotIndex(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemote(t)
	remote.On("GetList", mock.Anything, "parking_lots", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]models.ParkingLot)
			*out = []models.ParkingLot{
				{ID: 1, Name: "Central", Street: "Main St 1"},
				{ID: 2, Name: "Station", Street: "Rail Ave 9"},
			}
		}).
		Return(nil)
	remote.On("GetList", mock.Anything, "parking_lots/1/parking_slots", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]models.ParkingSlot)
			*out = []models.ParkingSlot{{ID: 100, Number: 4}, {ID: 101, Number: 5}}
		}).
		Return(nil)
	// second lot's slot fetch fails; the lot keeps an empty slot list
	remote.On("GetList", mock.Anything, "parking_lots/2/parking_slots", mock.Anything, mock.Anything).
		Return(errors.New("boom"))

	s := New(slogdiscard.NewDiscardLogger(), remote)

	snap, err := s.ParkingLots(context.Background())
	require.NoError(t, err, "a per-lot slot failure does not abort the load")

	ref, ok := snap.ResolveSlot(101)
	require.True(t, ok)
	assert.Equal(t, SlotRef{LotName: "Central", LotStreet: "Main St 1", SlotNumber: 5}, ref)

	_, ok = snap.ResolveSlot(999)
	assert.False(t, ok)

	require.Len(t, snap.Lots(), 2)
	assert.Empty(t, snap.Lots()[1].Slots)
}

func TestStoreBookingsPassesParams(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("since", "2024-01-10T11_00_00")
	params.Set("id_user", "7")

	remote := mocks.NewRemote(t)
	remote.On("GetList", mock.Anything, "bookings", params, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]models.Booking)
			*out = []models.Booking{{ID: 51}, {ID: 52}}
		}).
		Return(nil)

	s := New(slogdiscard.NewDiscardLogger(), remote)

	bookings, err := s.Bookings(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	assert.Equal(t, 51, bookings[0].ID, "server order preserved")
}

func TestStoreBookingsEmptyIsValid(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemote(t)
	remote.On("GetList", mock.Anything, "bookings", mock.Anything, mock.Anything).Return(nil)

	s := New(slogdiscard.NewDiscardLogger(), remote)

	bookings, err := s.Bookings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestStoreDeleteBooking(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemote(t)
	remote.On("Delete", mock.Anything, "bookings/51").Return("Booking deleted", nil)

	s := New(slogdiscard.NewDiscardLogger(), remote)

	msg, err := s.DeleteBooking(context.Background(), 51)
	require.NoError(t, err)
	assert.Equal(t, "Booking deleted", msg)
}

func TestStoreUsers(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemote(t)
	remote.On("GetList", mock.Anything, "users", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]models.User)
			*out = []models.User{{ID: 10, Email: "owner@example.com"}}
		}).
		Return(nil)

	s := New(slogdiscard.NewDiscardLogger(), remote)

	snap, err := s.Users(context.Background())
	require.NoError(t, err)

	u, ok := snap.Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "owner@example.com", u.Email)
}
