package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Education is a degree or certificate. GPA is optional and kept to two decimal places.
type Education struct {
	ID           uint                `json:"id" db:"id" gorm:"primaryKey"`
	Institution  string              `json:"institution" db:"institution" gorm:"type:varchar(200);not null;uniqueIndex:idx_education_natural_key,priority:1" validate:"required,nonul,max=200"`
	Degree       string              `json:"degree" db:"degree" gorm:"type:varchar(200);not null;uniqueIndex:idx_education_natural_key,priority:2" validate:"required,nonul,max=200"`
	FieldOfStudy string              `json:"field_of_study" db:"field_of_study" gorm:"type:varchar(200);not null;uniqueIndex:idx_education_natural_key,priority:3" validate:"required,nonul,max=200"`
	StartDate    datatypes.Date      `json:"start_date" db:"start_date" gorm:"not null;index:idx_education_start" validate:"required"`
	EndDate      *datatypes.Date     `json:"end_date,omitempty" db:"end_date"`
	GPA          decimal.NullDecimal `json:"gpa" db:"gpa" gorm:"column:gpa;type:numeric(3,2)" validate:"omitempty,gte=0,lte=4"`
}

// IsCurrent reports whether the enrollment is ongoing.
func (e Education) IsCurrent() bool {
	return e.EndDate == nil
}

// UnmarshalJSON accepts start_date and end_date as YYYY-MM-DD or RFC 3339.
func (e *Education) UnmarshalJSON(b []byte) error {
	type plain Education
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

// GPAString formats the GPA with two decimals, or "" when it is not set.
func (e Education) GPAString() string {
	if !e.GPA.Valid {
		return ""
	}
	return e.GPA.Decimal.StringFixed(2)
}

func (e Education) String() string {
	return fmt.Sprintf("%s from %s", e.Degree, e.Institution)
}

// NewGPA rounds v to two decimals.
func NewGPA(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v).Round(2))
}
