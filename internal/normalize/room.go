package normalize

import "hostel-be-svc/internal/models"

// Room maps a get_user_room "room" object
func Room(row map[string]interface{}) *models.RoomRecord {
	if row == nil {
		return nil
	}
	room := &models.RoomRecord{
		ID:          First(row, "id"),
		RoomNo:      First(row, RoomNoKeys...),
		Seater:      First(row, RoomSeaterKeys...),
		Fees:        First(row, RoomFeeKeys...),
		PostingDate: First(row, RoomPostingKeys...),
	}
	for _, key := range RoomACKeys {
		if _, ok := row[key]; ok {
			room.AC = Truthy(row[key])
			break
		}
	}
	return room
}

// Booking maps a get_user_room "booking" object
func Booking(row map[string]interface{}) *models.BookingRecord {
	if row == nil {
		return nil
	}
	return &models.BookingRecord{
		ID:            First(row, "id"),
		UserEmail:     First(row, "user_email"),
		RoomNo:        First(row, "room_no"),
		Receipt:       First(row, "receipt"),
		ReceiptStatus: Status(First(row, "receipt_status"), ReceiptDefaultStatus),
		UploadDate:    First(row, "upload_date"),
		SeatsBooked:   First(row, "seats_booked"),
		Phone:         First(row, "phone"),
	}
}

// Assignment maps the whole get_user_room payload
func Assignment(payload map[string]interface{}) *models.RoomAssignment {
	assignment := &models.RoomAssignment{}
	if row, ok := AsRow(payload["room"]); ok {
		assignment.Room = Room(row)
	}
	if row, ok := AsRow(payload["booking"]); ok {
		assignment.Booking = Booking(row)
	}
	if row, ok := AsRow(payload["user"]); ok && len(row) > 0 {
		assignment.User = StripSensitive(models.UserRecord(row))
	}
	return assignment
}
