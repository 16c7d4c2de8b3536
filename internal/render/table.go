package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"parkview/internal/view"
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	headerColor = color.New(color.Bold)
	labelColor  = color.New(color.Bold)
)

// Table writes the assembled view as a column-aligned table. The last
// column is the per-row details handle: the row number to pass back on the
// command line.
func Table(w io.Writer, v *view.View) error {
	if _, err := titleColor.Fprintln(w, v.Title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	for _, col := range v.Columns {
		headerColor.Fprint(tw, col.Header)
		fmt.Fprint(tw, "\t")
	}
	headerColor.Fprintln(tw, "Details")

	for i, row := range v.Rows {
		for _, col := range v.Columns {
			fmt.Fprint(tw, col.Extract(row), "\t")
		}
		fmt.Fprintln(tw, "#"+strconv.Itoa(i))
	}

	return tw.Flush()
}

// Details writes one booking's detail block, mirroring the original detail
// dialog: booking info, then the vehicle block only when a vehicle
// resolved, then the parking slot block and the note.
func Details(w io.Writer, d *view.BookingDetails) {
	titleColor.Fprintln(w, "Booking info:")
	field(w, "Datetime start", d.Start)
	field(w, "Datetime end", d.End)
	field(w, "Entry time", d.EntryTime)
	field(w, "Exit time", d.ExitTime)
	field(w, "Amount", fmt.Sprintf("%.2f", d.Amount))
	fmt.Fprintln(w)

	if d.Vehicle != nil {
		titleColor.Fprintln(w, "Vehicle info:")
		field(w, "License plate", d.Vehicle.LicensePlate)
		field(w, "Brand", d.Vehicle.Brand)
		field(w, "Model", d.Vehicle.Model)
		fmt.Fprintln(w)
	}

	titleColor.Fprintln(w, "Parking slot info:")
	field(w, "Parking lot name", d.Slot.LotName)
	field(w, "Parking lot street", d.Slot.LotStreet)
	field(w, "Parking slot number", d.Slot.SlotNumber)
	fmt.Fprintln(w)

	field(w, "Note", d.Note)
}

func field(w io.Writer, label, value string) {
	labelColor.Fprint(w, label+": ")
	fmt.Fprintln(w, value)
}
