package forms

import (
	"time"

	"gorm.io/datatypes"
)

func dateOf(year int) datatypes.Date {
	return datatypes.Date(time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC))
}

func strPtr(s string) *string {
	return &s
}
