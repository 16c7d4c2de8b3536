package view

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"parkview/internal/models"
)

// Mode selects which bookings a view shows. Fixed for the lifetime of one
// view; changing mode means building a new view.
type Mode int

const (
	ModeAll Mode = iota
	ModeInProgress
	ModeExpired
)

func (m Mode) String() string {
	switch m {
	case ModeInProgress:
		return "in-progress"
	case ModeExpired:
		return "expired"
	default:
		return "all"
	}
}

// Title is the banner the original client put above the table.
func (m Mode) Title() string {
	switch m {
	case ModeInProgress:
		return "Bookings in progress"
	case ModeExpired:
		return "Bookings expired"
	default:
		return "Bookings"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "all", "":
		return ModeAll, nil
	case "in-progress":
		return ModeInProgress, nil
	case "expired":
		return ModeExpired, nil
	default:
		return ModeAll, fmt.Errorf("unknown mode %q", s)
	}
}

// Filter builds the bookings request parameters for one mode and caller,
// and applies the client-side re-check the Expired mode requires.
type Filter struct {
	mode     Mode
	callerID int
	admin    bool
}

func NewFilter(mode Mode, callerID int, admin bool) Filter {
	return Filter{mode: mode, callerID: callerID, admin: admin}
}

// Params returns the query parameters for the bookings fetch. InProgress
// asks the server for bookings ending at or after now, Expired for bookings
// ending at or before now. Non-admin callers are always scoped to their own
// bookings; admin requests never carry id_user.
func (f Filter) Params(now time.Time) url.Values {
	params := url.Values{}

	switch f.mode {
	case ModeInProgress:
		params.Set("since", now.UTC().Format(wireClockLayout))
	case ModeExpired:
		params.Set("until", now.UTC().Format(wireClockLayout))
	}

	if !f.admin {
		params.Set("id_user", strconv.Itoa(f.callerID))
	}

	return params
}

// Retain reports whether a booking the server returned belongs in the final
// table. Only the Expired mode re-checks: the server's until filter is
// coarse, so a booking stays only when it ended strictly before now in UTC.
// The server result is trusted as-is for the other modes, including
// InProgress. A booking whose end timestamp does not parse is dropped.
func (f Filter) Retain(b models.Booking, now time.Time) bool {
	if f.mode != ModeExpired {
		return true
	}

	end, err := time.ParseInLocation(TimeLayout, b.DatetimeEnd, time.UTC)
	if err != nil {
		return false
	}

	return end.Before(now.UTC())
}
