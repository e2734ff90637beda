package models

// RoomRecord represents a hostel room as returned by get_user_room
type RoomRecord struct {
	ID          string `json:"id,omitempty"`
	RoomNo      string `json:"room_no"`
	Seater      string `json:"seater,omitempty"`
	Fees        string `json:"fees,omitempty"`
	AC          bool   `json:"ac"`
	PostingDate string `json:"posting_date,omitempty"`
}

// BookingRecord links a user to a room with the uploaded payment receipt
type BookingRecord struct {
	ID            string `json:"id,omitempty"`
	UserEmail     string `json:"user_email,omitempty"`
	RoomNo        string `json:"room_no,omitempty"`
	Receipt       string `json:"receipt,omitempty"`
	ReceiptStatus Status `json:"receipt_status"`
	UploadDate    string `json:"upload_date,omitempty"`
	SeatsBooked   string `json:"seats_booked,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// RoomAssignment is the get_user_room payload: the room, the booking and,
// when the backend chose to send one, a fresher copy of the user
type RoomAssignment struct {
	Room    *RoomRecord    `json:"room,omitempty"`
	Booking *BookingRecord `json:"booking,omitempty"`
	User    UserRecord     `json:"user,omitempty"`
}
