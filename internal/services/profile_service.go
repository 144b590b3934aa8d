package services

import (
	"errors"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
)

type ProfileService interface {
	Get(userID string) (*dto.ProfileResponse, error)
	Update(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

// Get returns the user's profile, creating an empty one on first
// access so the client never sees a 404 for its own profile.
func (s *profileService) Get(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if errors.Is(err, repositories.ErrProfileNotFound) {
		profile = &models.Profile{UserID: userID}
		if err := s.profiles.Create(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) Update(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if errors.Is(err, repositories.ErrProfileNotFound) {
		profile = &models.Profile{UserID: userID}
		if err := s.profiles.Create(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Headline != nil {
		profile.Headline = truncate(*req.Headline, 200)
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.SetSkills(req.Skills)
	}
	if req.Links != nil {
		profile.SetLinks(req.Links)
	}
	if req.Education != nil {
		profile.SetEducation(req.Education)
	}
	if req.Experience != nil {
		profile.SetExperience(req.Experience)
	}

	if err := s.profiles.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}
