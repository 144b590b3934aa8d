package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Profile struct {
	BaseModel
	UserID     string         `gorm:"uniqueIndex;not null"`
	Headline   string
	Bio        string
	Skills     datatypes.JSON `gorm:"type:jsonb"` // ["go", "distributed systems"]
	Links      datatypes.JSON `gorm:"type:jsonb"` // [{"label": "GitHub", "url": "..."}]
	Education  datatypes.JSON `gorm:"type:jsonb"`
	Experience datatypes.JSON `gorm:"type:jsonb"`
}

type ProfileLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ProfileEducation struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

type ProfileExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

func (p *Profile) GetLinks() []ProfileLink {
	var links []ProfileLink
	if len(p.Links) > 0 {
		_ = json.Unmarshal(p.Links, &links)
	}
	return links
}

func (p *Profile) SetLinks(links []ProfileLink) {
	data, _ := json.Marshal(links)
	p.Links = datatypes.JSON(data)
}

func (p *Profile) GetEducation() []ProfileEducation {
	var education []ProfileEducation
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &education)
	}
	return education
}

func (p *Profile) SetEducation(education []ProfileEducation) {
	data, _ := json.Marshal(education)
	p.Education = datatypes.JSON(data)
}

func (p *Profile) GetExperience() []ProfileExperience {
	var experience []ProfileExperience
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &experience)
	}
	return experience
}

func (p *Profile) SetExperience(experience []ProfileExperience) {
	data, _ := json.Marshal(experience)
	p.Experience = datatypes.JSON(data)
}
