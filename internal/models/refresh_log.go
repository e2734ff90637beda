package models

import (
	"time"
)

// RefreshLog represents the refresh_logs table written by the session refresh scheduler
type RefreshLog struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  *string    `json:"document_id" gorm:"column:document_id;index"`
	JobCode     *string    `json:"job_code" gorm:"column:job_code"`
	Message     *string    `json:"message" gorm:"column:message;type:text"`
	Status      *string    `json:"status" gorm:"column:status"`
	UserID      *string    `json:"user_id" gorm:"column:user_id"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// TableName sets the insert table name for RefreshLog
func (RefreshLog) TableName() string {
	return "refresh_logs"
}
