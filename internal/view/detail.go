package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parkview/internal/lib/logger/sl"
	"parkview/internal/models"
	"parkview/internal/upark"
)

// ErrDeleteRejected wraps a server-side refusal to delete a booking. The
// server's message is carried verbatim for display.
var ErrDeleteRejected = errors.New("delete rejected")

// ErrInvalidTransition is returned for a workflow call that is not legal in
// the current state.
var ErrInvalidTransition = errors.New("invalid workflow transition")

// ErrDeleteUnavailable marks a delete request by a viewer the workflow never
// offers deletion to.
var ErrDeleteUnavailable = errors.New("deletion not available for this view")

type DetailState int

const (
	StateViewing DetailState = iota
	StateConfirmingDelete
	StateDeleted
	StateClosed
)

func (s DetailState) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateConfirmingDelete:
		return "confirming-delete"
	case StateDeleted:
		return "deleted"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Deleter issues the remote delete. Satisfied by *store.Store.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Deleter
type Deleter interface {
	DeleteBooking(ctx context.Context, id int) (string, error)
}

// DetailWorkflow drives one booking's detail view: look, optionally confirm
// a delete, and report whether the table needs re-assembling afterwards.
// Deletion is owner-initiated and only for live or future bookings, so it
// is never offered to admins or inside the expired view.
type DetailWorkflow struct {
	log     *slog.Logger
	deleter Deleter
	booking models.Booking

	admin       bool
	expiredView bool

	state   DetailState
	refresh bool
}

func NewDetailWorkflow(log *slog.Logger, deleter Deleter, booking models.Booking, admin, expiredView bool) *DetailWorkflow {
	return &DetailWorkflow{
		log:         log,
		deleter:     deleter,
		booking:     booking,
		admin:       admin,
		expiredView: expiredView,
		state:       StateViewing,
	}
}

func (w *DetailWorkflow) State() DetailState { return w.state }

// CanDelete reports whether this viewer is offered the delete control.
func (w *DetailWorkflow) CanDelete() bool {
	return !w.admin && !w.expiredView
}

// RequestDelete moves Viewing to ConfirmingDelete.
func (w *DetailWorkflow) RequestDelete() error {
	if w.state != StateViewing {
		return fmt.Errorf("%w: delete requested in state %s", ErrInvalidTransition, w.state)
	}
	if !w.CanDelete() {
		return ErrDeleteUnavailable
	}

	w.state = StateConfirmingDelete

	return nil
}

// CancelDelete returns from ConfirmingDelete to Viewing with no side
// effect.
func (w *DetailWorkflow) CancelDelete() error {
	if w.state != StateConfirmingDelete {
		return fmt.Errorf("%w: cancel in state %s", ErrInvalidTransition, w.state)
	}

	w.state = StateViewing

	return nil
}

// ConfirmDelete issues the remote delete. On success the workflow ends in
// Deleted and the caller must re-assemble the table; the returned string is
// the server's response verbatim. On rejection the server's message comes
// back wrapped in ErrDeleteRejected and the workflow returns to Viewing.
func (w *DetailWorkflow) ConfirmDelete(ctx context.Context) (string, error) {
	const op = "view.DetailWorkflow.ConfirmDelete"

	if w.state != StateConfirmingDelete {
		return "", fmt.Errorf("%w: confirm in state %s", ErrInvalidTransition, w.state)
	}

	log := w.log.With(slog.String("op", op), slog.Int("booking_id", w.booking.ID))

	msg, err := w.deleter.DeleteBooking(ctx, w.booking.ID)
	if err != nil {
		w.state = StateViewing

		var apiErr *upark.APIError
		if errors.As(err, &apiErr) {
			log.Warn("delete rejected by server", slog.String("message", apiErr.Message))
			return "", fmt.Errorf("%w: %s", ErrDeleteRejected, apiErr.Message)
		}

		log.Error("delete failed", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	w.state = StateDeleted
	w.refresh = true

	log.Info("booking deleted")

	return msg, nil
}

// Close ends the workflow from Viewing without side effects.
func (w *DetailWorkflow) Close() error {
	switch w.state {
	case StateViewing:
		w.state = StateClosed
		return nil
	case StateDeleted, StateClosed:
		return nil
	default:
		return fmt.Errorf("%w: close in state %s", ErrInvalidTransition, w.state)
	}
}

// RefreshRequired reports whether the caller must re-assemble the table.
// True only after a successful delete; the table is always rebuilt from the
// server rather than locally patched.
func (w *DetailWorkflow) RefreshRequired() bool { return w.refresh }
