package models

import (
	"fmt"

	"gorm.io/datatypes"
)

// Experience is a position held at a company. A nil EndDate marks the current position.
type Experience struct {
	ID          uint            `json:"id" db:"id" gorm:"primaryKey"`
	Company     string          `json:"company" db:"company" gorm:"type:varchar(200);not null;uniqueIndex:idx_experience_natural_key,priority:1" validate:"required,nonul,max=200"`
	Position    string          `json:"position" db:"position" gorm:"type:varchar(200);not null;uniqueIndex:idx_experience_natural_key,priority:2" validate:"required,nonul,max=200"`
	Description string          `json:"description" db:"description" gorm:"type:text;not null" validate:"required,nonul"`
	StartDate   datatypes.Date  `json:"start_date" db:"start_date" gorm:"not null;index:idx_experience_start" validate:"required"`
	EndDate     *datatypes.Date `json:"end_date,omitempty" db:"end_date"`
	Location    string          `json:"location" db:"location" gorm:"type:varchar(200);not null;default:''" validate:"nonul,max=200"`
}

// IsCurrent reports whether the position is ongoing.
func (e Experience) IsCurrent() bool {
	return e.EndDate == nil
}

// UnmarshalJSON accepts start_date and end_date as YYYY-MM-DD or RFC 3339.
func (e *Experience) UnmarshalJSON(b []byte) error {
	type plain Experience
	aux := struct {
		*plain
		StartDate jsonDate  `json:"start_date"`
		EndDate   *jsonDate `json:"end_date,omitempty"`
	}{plain: (*plain)(e), StartDate: jsonDate(e.StartDate)}
	if err := decodeStrict(b, &aux); err != nil {
		return err
	}
	e.StartDate = datatypes.Date(aux.StartDate)
	e.EndDate = (*datatypes.Date)(aux.EndDate)
	return nil
}

func (e Experience) String() string {
	return fmt.Sprintf("%s at %s", e.Position, e.Company)
}
