package models

import (
	"fmt"
	"time"
)

// Contact is a message submitted through the contact form. Rows are never updated.
type Contact struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Email       string    `json:"email" db:"email" gorm:"type:varchar(254);not null"`
	Subject     string    `json:"subject" db:"subject" gorm:"type:varchar(200);not null"`
	Message     string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedDate time.Time `json:"created_date" db:"created_date" gorm:"not null;autoCreateTime;index:idx_contact_created"`
}

func (c Contact) String() string {
	return fmt.Sprintf("Message from %s - %s", c.Name, c.Subject)
}
