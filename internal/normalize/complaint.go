package normalize

import "hostel-be-svc/internal/models"

// Complaint maps one get_complaints row
func Complaint(row map[string]interface{}) models.ComplaintTicket {
	return models.ComplaintTicket{
		ID:        First(row, ComplaintIDKeys...),
		Date:      First(row, ComplaintDateKeys...),
		Name:      First(row, "name"),
		Phone:     First(row, "phone"),
		RoomNo:    First(row, "room_no"),
		Complaint: First(row, ComplaintBodyKeys...),
		Status:    Status(First(row, "status"), ComplaintDefaultStatus),
		Signature: First(row, "signature"),
	}
}

// Complaints maps every get_complaints row
func Complaints(rows []map[string]interface{}) []models.ComplaintTicket {
	tickets := make([]models.ComplaintTicket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, Complaint(row))
	}
	return tickets
}
