package models

type Vehicle struct {
	ID           int    `json:"id"`
	IDUser       int    `json:"id_user"`
	LicensePlate string `json:"license_plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}
