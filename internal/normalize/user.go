package normalize

import (
	"strings"

	"hostel-be-svc/internal/models"
)

// UserID returns the identity used by get_user and get_user_room
func UserID(user models.UserRecord) string {
	return First(user, UserIDKeys...)
}

// Email returns the user's email address
func Email(user models.UserRecord) string {
	return First(user, EmailKeys...)
}

// Name returns the user's display name
func Name(user models.UserRecord) string {
	return First(user, NameKeys...)
}

// Phone returns the user's contact number
func Phone(user models.UserRecord) string {
	return First(user, PhoneKeys...)
}

// RoomNumber returns the assigned room number
func RoomNumber(user models.UserRecord) string {
	return First(user, RoomNumberKeys...)
}

// MonthlyFee returns the monthly fee as sent by the backend
func MonthlyFee(user models.UserRecord) string {
	return First(user, MonthlyFeeKeys...)
}

// StripSensitive returns a copy of user without credential fields
func StripSensitive(user models.UserRecord) models.UserRecord {
	if user == nil {
		return nil
	}
	out := user.Clone()
	for key := range out {
		for _, sensitive := range sensitiveKeys {
			if strings.EqualFold(key, sensitive) {
				delete(out, key)
			}
		}
	}
	return out
}

// Canonical returns a copy of user with every alias group folded onto the
// group's first key. The value kept is the one First would read; the other
// spellings are dropped. Groups with no non-empty value are left as they are.
func Canonical(user models.UserRecord) models.UserRecord {
	if user == nil {
		return nil
	}
	out := user.Clone()
	for _, group := range UserAliasGroups {
		for _, key := range group {
			value, ok := out[key]
			if !ok || Stringify(value) == "" {
				continue
			}
			for _, alias := range group {
				delete(out, alias)
			}
			out[group[0]] = value
			break
		}
	}
	return out
}

// UserPatch returns the fields a fresh get_user response is authoritative
// for, under canonical keys so they replace whatever spelling the cache holds
func UserPatch(fresh models.UserRecord) models.UserRecord {
	return Canonical(StripSensitive(fresh))
}

// RoomPatch returns the fields a room lookup is authoritative for. Values are
// written under the first key of each profile alias list so they shadow any
// older spelling still present in the cached record.
func RoomPatch(assignment *models.RoomAssignment) models.UserRecord {
	if assignment == nil || assignment.Room == nil {
		return nil
	}
	patch := models.UserRecord{}
	if assignment.Room.RoomNo != "" {
		patch[RoomNumberKeys[0]] = assignment.Room.RoomNo
	}
	if assignment.Room.Fees != "" {
		patch[MonthlyFeeKeys[0]] = assignment.Room.Fees
	}
	if assignment.Room.Seater != "" {
		patch[BookingSeatKeys[0]] = assignment.Room.Seater
	}
	if len(patch) == 0 {
		return nil
	}
	return patch
}

// Profile maps a user record onto the profile view model. Document paths are
// resolved against fileBase.
func Profile(user models.UserRecord, fileBase string) models.Profile {
	return models.Profile{
		ID:               UserID(user),
		Name:             Name(user),
		Email:            Email(user),
		Phone:            Phone(user),
		DateOfBirth:      First(user, "dob"),
		Height:           First(user, "ht"),
		Weight:           First(user, "wt"),
		BloodGroup:       First(user, "bloodgrp"),
		MaritalStatus:    First(user, "marital"),
		FatherName:       First(user, "fname"),
		MotherName:       First(user, "mname"),
		FatherOccupation: First(user, "foccupation"),
		FatherMobile:     First(user, "Fmob"),
		GuardianName:     First(user, "lgname"),
		GuardianMobile:   First(user, "lgmob"),
		CurrentAddress:   First(user, CurrentAddressKeys...),
		PermanentAddress: First(user, "paddress"),
		Profession:       First(user, "profession"),
		InstituteName:    First(user, InstituteNameKeys...),
		InstituteAddress: First(user, InstituteAddressKeys...),
		StartDate:        First(user, "dos"),
		EndDate:          First(user, "doe"),
		PreferredFloor:   First(user, "pf"),
		RoomNumber:       RoomNumber(user),
		BookingSeat:      First(user, BookingSeatKeys...),
		MonthlyFee:       MonthlyFee(user),
		MedicalHistory:   First(user, "medical"),
		ProfilePic:       ResolveFileURL(fileBase, First(user, ProfilePicKeys...)),
		IDCardFront:      ResolveFileURL(fileBase, First(user, "id_card_front")),
		IDCardBack:       ResolveFileURL(fileBase, First(user, "id_card_back")),
	}
}

// ResolveFileURL turns a stored upload path into an absolute URL
func ResolveFileURL(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
