package models

import "fmt"

// Skill is a named proficiency (1-100) inside a display category such as "Databases".
type Skill struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name        string `json:"name" db:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_skill_name" validate:"required,nonul,max=100"`
	Proficiency int    `json:"proficiency" db:"proficiency" gorm:"not null" validate:"min=1,max=100"`
	Category    string `json:"category" db:"category" gorm:"type:varchar(100);not null;index:idx_skill_category" validate:"required,nonul,max=100"`
}

func (s Skill) String() string {
	return fmt.Sprintf("%s (%d%%)", s.Name, s.Proficiency)
}

// SkillGroup is one category of skills, in display order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// GroupSkills groups skills by category, keeping the order in which categories first appear.
func GroupSkills(skills []*Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, *s)
	}
	return groups
}
