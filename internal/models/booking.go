package models

// Booking timestamps travel as naive UTC strings ("2006-01-02 15:04:05").
// EntryTime and ExitTime stay empty until the physical event happened.
// IDVehicle is 0 when the booking was made without a vehicle; real ids start
// at 1, so 0 never resolves and renders as "N/A" downstream.
type Booking struct {
	ID            int     `json:"id"`
	DatetimeStart string  `json:"datetime_start"`
	DatetimeEnd   string  `json:"datetime_end"`
	EntryTime     string  `json:"entry_time,omitempty"`
	ExitTime      string  `json:"exit_time,omitempty"`
	Amount        float64 `json:"amount"`
	IDVehicle     int     `json:"id_vehicle,omitempty"`
	IDParkingSlot int     `json:"id_parking_slot"`
	IDUser        int     `json:"id_user"`
	Note          string  `json:"note,omitempty"`
}
