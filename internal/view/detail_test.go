package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkview/internal/lib/logger/handlers/slogdiscard"
	"parkview/internal/models"
	"parkview/internal/upark"
	"parkview/internal/view/mocks"
)

func TestDetailWorkflowCanDelete(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name        string
		admin       bool
		expiredView bool
		want        bool
	}{
		{name: "owner in live view", want: true},
		{name: "admin never deletes", admin: true, want: false},
		{name: "expired view never deletes", expiredView: true, want: false},
		{name: "admin in expired view", admin: true, expiredView: true, want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			wf := NewDetailWorkflow(logger, mocks.NewDeleter(t), models.Booking{ID: 1}, tc.admin, tc.expiredView)

			assert.Equal(t, tc.want, wf.CanDelete())

			if !tc.want {
				assert.ErrorIs(t, wf.RequestDelete(), ErrDeleteUnavailable)
				assert.Equal(t, StateViewing, wf.State())
			}
		})
	}
}

func TestDetailWorkflowDeleteHappyPath(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	deleter := mocks.NewDeleter(t)
	deleter.On("DeleteBooking", mock.Anything, 51).Return("Booking deleted", nil)

	wf := NewDetailWorkflow(logger, deleter, models.Booking{ID: 51}, false, false)

	require.Equal(t, StateViewing, wf.State())
	assert.False(t, wf.RefreshRequired())

	require.NoError(t, wf.RequestDelete())
	require.Equal(t, StateConfirmingDelete, wf.State())

	msg, err := wf.ConfirmDelete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Booking deleted", msg, "server response reported verbatim")

	assert.Equal(t, StateDeleted, wf.State())
	assert.True(t, wf.RefreshRequired(), "successful delete requires a table refresh")

	require.NoError(t, wf.Close(), "closing a deleted workflow is a no-op")
	assert.Equal(t, StateDeleted, wf.State())
}

func TestDetailWorkflowDeleteRejected(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	deleter := mocks.NewDeleter(t)
	deleter.On("DeleteBooking", mock.Anything, 51).
		Return("", &upark.APIError{StatusCode: 409, Message: "booking already consumed"})

	wf := NewDetailWorkflow(logger, deleter, models.Booking{ID: 51}, false, false)

	require.NoError(t, wf.RequestDelete())

	_, err := wf.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, ErrDeleteRejected)
	assert.Contains(t, err.Error(), "booking already consumed", "server message carried verbatim")

	assert.Equal(t, StateViewing, wf.State(), "rejection returns to viewing, not closed")
	assert.False(t, wf.RefreshRequired())
}

func TestDetailWorkflowDeleteTransportFailure(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	deleter := mocks.NewDeleter(t)
	deleter.On("DeleteBooking", mock.Anything, 51).Return("", errors.New("connection reset"))

	wf := NewDetailWorkflow(logger, deleter, models.Booking{ID: 51}, false, false)

	require.NoError(t, wf.RequestDelete())

	_, err := wf.ConfirmDelete(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDeleteRejected)

	assert.Equal(t, StateViewing, wf.State())
	assert.False(t, wf.RefreshRequired())
}

func TestDetailWorkflowCancel(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	deleter := mocks.NewDeleter(t) // no expectations: cancel has no side effect

	wf := NewDetailWorkflow(logger, deleter, models.Booking{ID: 51}, false, false)

	require.NoError(t, wf.RequestDelete())
	require.NoError(t, wf.CancelDelete())
	assert.Equal(t, StateViewing, wf.State())
	assert.False(t, wf.RefreshRequired())

	require.NoError(t, wf.Close())
	assert.Equal(t, StateClosed, wf.State())
	assert.False(t, wf.RefreshRequired(), "normal close needs no refresh")
}

func TestDetailWorkflowInvalidTransitions(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	wf := NewDetailWorkflow(logger, mocks.NewDeleter(t), models.Booking{ID: 51}, false, false)

	assert.ErrorIs(t, wf.CancelDelete(), ErrInvalidTransition)

	_, err := wf.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, wf.RequestDelete())
	assert.ErrorIs(t, wf.RequestDelete(), ErrInvalidTransition, "delete already pending")
	assert.ErrorIs(t, wf.Close(), ErrInvalidTransition, "cannot close mid-confirmation")
}
