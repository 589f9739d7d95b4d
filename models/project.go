package models

import (
	"strings"
	"time"
)

// ImagePrefix is the media path every project image reference lives under.
const ImagePrefix = "projects/"

// Project represents a portfolio project
type Project struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title        string    `json:"title" db:"title" gorm:"type:varchar(200);not null;uniqueIndex:idx_project_title" validate:"required,nonul,max=200"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null" validate:"required,nonul"`
	Image        *string   `json:"image,omitempty" db:"image" gorm:"type:varchar(255)" validate:"omitempty,startswith=projects/"`
	Technologies string    `json:"technologies" db:"technologies" gorm:"type:varchar(300);not null" validate:"required,nonul,max=300"`
	GithubURL    *string   `json:"github_url,omitempty" db:"github_url" gorm:"column:github_url;type:varchar(200)" validate:"omitempty,url,max=200"`
	LiveURL      *string   `json:"live_url,omitempty" db:"live_url" gorm:"column:live_url;type:varchar(200)" validate:"omitempty,url,max=200"`
	CreatedDate  time.Time `json:"created_date" db:"created_date" gorm:"not null;autoCreateTime;index:idx_project_created"`
	Featured     bool      `json:"featured" db:"featured" gorm:"not null;default:false;index:idx_project_featured"`
}

// TechnologiesList splits the comma-separated technologies into trimmed, non-empty entries.
func (p Project) TechnologiesList() []string {
	var techs []string
	for _, tech := range strings.Split(p.Technologies, ",") {
		if tech = strings.TrimSpace(tech); tech != "" {
			techs = append(techs, tech)
		}
	}
	return techs
}

func (p Project) String() string {
	return p.Title
}
