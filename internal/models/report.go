package models

import "time"

// Report is a citizen-submitted community issue. ProblemType and Priority
// hold canonical labels only; decorated client values are normalized before
// they reach the database.
type Report struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	ReporterName     string    `gorm:"size:255;not null" json:"reporter_name"`
	ProblemType      string    `gorm:"size:50;not null;index" json:"problem_type"`
	Location         string    `gorm:"size:255;not null" json:"location"`
	IssueDescription string    `gorm:"type:text;not null" json:"issue_description"`
	ReportedDate     string    `gorm:"size:50;not null" json:"reported_date"` // user-supplied, e.g. "2024-01-01" or "Today"
	Status           string    `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	Priority         string    `gorm:"size:20;not null;default:'Medium'" json:"priority"`
	PhotoRef         string    `gorm:"size:512" json:"photo_ref,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}
