package models

import "time"

// AuditLog is an append-only record of admin actions. Rows are never updated;
// an admin may bulk-clear the whole table.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AdminID    uint      `gorm:"not null;index" json:"admin_id"`
	Action     string    `gorm:"size:50;not null;index" json:"action"`
	TargetType string    `gorm:"size:20;not null" json:"target_type"` // report | user | system
	TargetID   *uint     `json:"target_id,omitempty"`
	Details    string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Admin User `gorm:"foreignKey:AdminID" json:"-"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogEntry is the admin-facing view of a log row, joined with the acting
// admin's display name.
type AuditLogEntry struct {
	AuditLog
	AdminName string `json:"admin_name"`
}
