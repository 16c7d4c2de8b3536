package view

// Row is one assembled table row. BookingID ties the row back to its
// booking by value, so action handlers never capture a mutable index.
type Row struct {
	BookingID    int
	Start        string
	End          string
	LicensePlate string
	UserEmail    string
	LotName      string
	SlotNumber   string
}

// Column describes one table column: its header and how to read its cell
// from a row.
type Column struct {
	Header  string
	Extract func(Row) string
}

// Columns returns the column list for one view. The user-email column
// exists only for privileged callers; the descriptor list is built once per
// view instead of branching per cell.
func Columns(admin bool) []Column {
	cols := []Column{
		{Header: "Datetime start", Extract: func(r Row) string { return r.Start }},
		{Header: "Datetime end", Extract: func(r Row) string { return r.End }},
		{Header: "License plate", Extract: func(r Row) string { return r.LicensePlate }},
	}

	if admin {
		cols = append(cols, Column{Header: "User", Extract: func(r Row) string { return r.UserEmail }})
	}

	return append(cols,
		Column{Header: "Parking lot", Extract: func(r Row) string { return r.LotName }},
		Column{Header: "Slot number", Extract: func(r Row) string { return r.SlotNumber }},
	)
}
