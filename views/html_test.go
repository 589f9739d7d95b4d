package views

import (
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/datatypes"
)

func TestDateSpan(t *testing.T) {
	start := datatypes.Date(time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC))
	end := datatypes.Date(time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC))

	current := models.Experience{StartDate: start}
	if got := dateSpan(current.StartDate, current.EndDate, current.IsCurrent()); got != "Jun 2021 - Present" {
		t.Errorf("dateSpan(current) = %q", got)
	}

	past := models.Education{StartDate: start, EndDate: &end}
	if got := dateSpan(past.StartDate, past.EndDate, past.IsCurrent()); got != "Jun 2021 - Feb 2023" {
		t.Errorf("dateSpan(past) = %q", got)
	}
}
