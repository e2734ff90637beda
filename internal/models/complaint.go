package models

// ComplaintTicket is a complaint as listed by get_complaints
type ComplaintTicket struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	RoomNo    string `json:"room_no"`
	Complaint string `json:"complaint"`
	Status    Status `json:"status"`
	Signature string `json:"signature,omitempty"`
}

// ComplaintForm is the submit_complaint payload
type ComplaintForm struct {
	Date      string `json:"date" form:"date"`
	Complaint string `json:"complaint" form:"complaint"`
	Name      string `json:"name" form:"name"`
	Phone     string `json:"phone" form:"phone"`
	RoomNo    string `json:"room_no" form:"room_no"`
}
