package models

// Profile is the student profile rendered by the profile view, built from a
// UserRecord by normalize.Profile
type Profile struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"date_of_birth"`
	Height           string `json:"height"`
	Weight           string `json:"weight"`
	BloodGroup       string `json:"blood_group"`
	MaritalStatus    string `json:"marital_status"`
	FatherName       string `json:"father_name"`
	MotherName       string `json:"mother_name"`
	FatherOccupation string `json:"father_occupation"`
	FatherMobile     string `json:"father_mobile"`
	GuardianName     string `json:"guardian_name"`
	GuardianMobile   string `json:"guardian_mobile"`
	CurrentAddress   string `json:"current_address"`
	PermanentAddress string `json:"permanent_address"`
	Profession       string `json:"profession"`
	InstituteName    string `json:"institute_name"`
	InstituteAddress string `json:"institute_address"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	PreferredFloor   string `json:"preferred_floor"`
	RoomNumber       string `json:"room_number"`
	BookingSeat      string `json:"booking_seat"`
	MonthlyFee       string `json:"monthly_fee"`
	MedicalHistory   string `json:"medical_history"`
	ProfilePic       string `json:"profile_pic"`
	IDCardFront      string `json:"id_card_front"`
	IDCardBack       string `json:"id_card_back"`
}
