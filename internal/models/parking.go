package models

// ParkingLot carries its slots once the nested per-lot fetch has run; a lot
// whose slot fetch failed or returned nothing keeps an empty Slots list.
type ParkingLot struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Street string        `json:"street"`
	Slots  []ParkingSlot `json:"-"`
}

type ParkingSlot struct {
	ID     int `json:"id"`
	Number int `json:"number"`
}
