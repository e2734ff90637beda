package normalize

import "hostel-be-svc/internal/models"

// LaundryRequest maps one get_laundry row. Image paths are resolved against fileBase.
func LaundryRequest(row map[string]interface{}, fileBase string) models.LaundryRequest {
	return models.LaundryRequest{
		ID:         First(row, "id"),
		Name:       First(row, "name"),
		RoomNo:     First(row, "room_no"),
		GivenCloth: First(row, "given_cloth"),
		TakenCloth: First(row, "taken_cloth"),
		Phone:      First(row, "phone"),
		Signature:  First(row, "signature"),
		Status:     Status(First(row, "status"), LaundryDefaultStatus),
		ClothImage: ResolveFileURL(fileBase, First(row, "cloth_image")),
		Date:       First(row, "date"),
	}
}

// LaundryRequests maps every get_laundry row
func LaundryRequests(rows []map[string]interface{}, fileBase string) []models.LaundryRequest {
	requests := make([]models.LaundryRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, LaundryRequest(row, fileBase))
	}
	return requests
}
