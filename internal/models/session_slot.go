package models

import "time"

// SessionSlot represents the session_slots table holding the serialized
// session user under a well-known key
type SessionSlot struct {
	Key       string    `json:"key" gorm:"primaryKey;column:key;size:128"`
	Payload   string    `json:"payload" gorm:"column:payload;type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for SessionSlot
func (SessionSlot) TableName() string {
	return "session_slots"
}
