package models

import "io"

// LaundryRequest is a laundry request as listed by get_laundry
type LaundryRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RoomNo     string `json:"room_no"`
	GivenCloth string `json:"given_cloth"`
	TakenCloth string `json:"taken_cloth,omitempty"`
	Phone      string `json:"phone"`
	Signature  string `json:"signature,omitempty"`
	Status     Status `json:"status"`
	ClothImage string `json:"cloth_image,omitempty"`
	Date       string `json:"date"`
}

// LaundryForm is the submit_laundry payload
type LaundryForm struct {
	Name       string `json:"name" form:"name"`
	Phone      string `json:"phone" form:"phone"`
	GivenCloth string `json:"given_cloth" form:"given_cloth"`
	RoomNo     string `json:"room_no" form:"room_no"`
	Date       string `json:"date" form:"date"`
}

// Upload is an optional file forwarded to the backend as a multipart part
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
