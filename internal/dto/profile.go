package dto

import "outreachai_backend/internal/models"

type UpdateProfileRequest struct {
	Headline   *string                    `json:"headline" validate:"omitempty,max=200"`
	Bio        *string                    `json:"bio" validate:"omitempty,max=5000"`
	Skills     []string                   `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Links      []models.ProfileLink       `json:"links" validate:"omitempty,max=20,dive"`
	Education  []models.ProfileEducation  `json:"education" validate:"omitempty,max=20,dive"`
	Experience []models.ProfileExperience `json:"experience" validate:"omitempty,max=30,dive"`
}

type ProfileResponse struct {
	ID         string                     `json:"id"`
	Headline   string                     `json:"headline"`
	Bio        string                     `json:"bio"`
	Skills     []string                   `json:"skills"`
	Links      []models.ProfileLink       `json:"links"`
	Education  []models.ProfileEducation  `json:"education"`
	Experience []models.ProfileExperience `json:"experience"`
}

func NewProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		Headline:   p.Headline,
		Bio:        p.Bio,
		Skills:     p.GetSkills(),
		Links:      p.GetLinks(),
		Education:  p.GetEducation(),
		Experience: p.GetExperience(),
	}
}
