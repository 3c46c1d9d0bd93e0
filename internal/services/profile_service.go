package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/site"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailTaken    = errors.New("email already exists")
	ErrProfileExists = errors.New("profile already exists")
	ErrUserNotFound  = errors.New("user not found")
)

const defaultProfileName = "User"

type ProfileService struct {
	repos    *repository.Repositories
	defaults *site.Defaults
}

func NewProfileService(repos *repository.Repositories, defaults *site.Defaults) *ProfileService {
	return &ProfileService{repos: repos, defaults: defaults}
}

// GetProfile returns the owner's profile, or the placeholder profile when no
// owner row exists yet.
func (s *ProfileService) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	owner, err := s.repos.Users.FindOwner(ctx, nil)
	var view *dto.ProfileResponse
	if err == nil {
		// the row may be deleted between the two reads
		view, err = s.loadView(ctx, nil, owner.ID)
	}
	if repository.IsNotFound(err) {
		fallback := s.defaults.FallbackProfile()
		return &fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return view, nil
}

func (s *ProfileService) GetProfileByID(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	view, err := s.loadView(ctx, nil, userID)
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	return view, err
}

// SaveProfile creates the owner profile or overwrites it in place. Fields
// absent from the payload are cleared; achievement collections present in the
// payload are replaced in the same transaction. created reports which path ran.
func (s *ProfileService) SaveProfile(ctx context.Context, req *dto.ProfileRequest) (view *dto.ProfileResponse, created bool, err error) {
	if err := validateEmail(req); err != nil {
		return nil, false, err
	}

	err = s.repos.Transaction(ctx, func(tx *gorm.DB) error {
		var userID uuid.UUID

		owner, err := s.repos.Users.FindOwner(ctx, tx)
		switch {
		case err == nil:
			err = s.repos.Users.Update(ctx, tx, owner.ID, profileColumns(req, false))
			if err == nil {
				userID = owner.ID
			} else if !repository.IsNotFound(err) {
				return err
			}
		case !repository.IsNotFound(err):
			return err
		}

		// no owner, or the row vanished between lookup and update
		if userID == uuid.Nil {
			user := newOwner(req)
			if err := s.repos.Users.Create(ctx, tx, user); err != nil {
				return err
			}
			userID = user.ID
			created = true
		}

		if err := s.replaceAchievements(ctx, tx, userID, req.Achievements); err != nil {
			return err
		}

		view, err = s.loadView(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, false, translateProfileError(err)
	}
	return view, created, nil
}

// CreateProfile inserts the owner profile; it fails if one already exists.
func (s *ProfileService) CreateProfile(ctx context.Context, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	if err := validateEmail(req); err != nil {
		return nil, err
	}

	var view *dto.ProfileResponse
	err := s.repos.Transaction(ctx, func(tx *gorm.DB) error {
		user := newOwner(req)
		if err := s.repos.Users.Create(ctx, tx, user); err != nil {
			return err
		}
		if err := s.replaceAchievements(ctx, tx, user.ID, req.Achievements); err != nil {
			return err
		}
		var err error
		view, err = s.loadView(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return nil, translateProfileError(err)
	}
	return view, nil
}

// UpdateProfileByID patches the given user: absent fields keep their values,
// and present achievement collections are replaced, all in one transaction.
func (s *ProfileService) UpdateProfileByID(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		return nil, ErrEmailRequired
	}

	var view *dto.ProfileResponse
	err := s.repos.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repos.Users.Update(ctx, tx, userID, profileColumns(req, true)); err != nil {
			return err
		}
		if err := s.replaceAchievements(ctx, tx, userID, req.Achievements); err != nil {
			return err
		}
		var err error
		view, err = s.loadView(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, translateProfileError(err)
	}
	return view, nil
}

func (s *ProfileService) replaceAchievements(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *dto.AchievementsRequest) error {
	if req == nil {
		return nil
	}

	if req.Awards != nil {
		awards := []models.Award{}
		for _, d := range nonBlank(req.Awards) {
			awards = append(awards, models.Award{UserID: userID, Position: len(awards), Description: d})
		}
		if err := s.repos.Awards.Replace(ctx, tx, userID, awards); err != nil {
			return err
		}
	}

	if req.Publications != nil {
		publications := []models.Publication{}
		for _, p := range req.Publications {
			title := strings.TrimSpace(p.Title)
			description := strings.TrimSpace(p.Description)
			if title == "" && description == "" {
				continue
			}
			publications = append(publications, models.Publication{
				UserID:      userID,
				Position:    len(publications),
				Title:       title,
				Description: description,
			})
		}
		if err := s.repos.Publications.Replace(ctx, tx, userID, publications); err != nil {
			return err
		}
	}

	if req.Recognition != nil {
		recognitions := []models.Recognition{}
		for _, d := range nonBlank(req.Recognition) {
			recognitions = append(recognitions, models.Recognition{UserID: userID, Position: len(recognitions), Description: d})
		}
		if err := s.repos.Recognitions.Replace(ctx, tx, userID, recognitions); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) loadView(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.repos.Users.GetWithAchievements(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	view := ToProfileView(user)
	return &view, nil
}

// ToProfileView maps the flat user columns and preloaded children into the
// nested view model.
func ToProfileView(user *models.User) dto.ProfileResponse {
	view := dto.ProfileResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Title:    user.Title,
		Bio:      user.Bio,
		Image:    user.Image,
		Email:    user.Email,
		Location: user.Location,
		Website:  user.Website,
		Social: dto.SocialLinks{
			Twitter:   user.TwitterHandle,
			Instagram: user.InstagramHandle,
			Facebook:  user.FacebookHandle,
		},
		About: dto.AboutSection{
			Education:  user.Education,
			Experience: user.Experience,
			Interests:  user.Interests,
		},
		Stats: dto.ProfileStats{
			Writings:  user.WritingsCount,
			Photos:    user.PhotosCount,
			Followers: user.FollowersCount,
		},
		Achievements: dto.Achievements{
			Awards:       make([]string, 0, len(user.Awards)),
			Publications: make([]dto.PublicationItem, 0, len(user.Publications)),
			Recognition:  make([]string, 0, len(user.Recognitions)),
		},
	}
	for _, a := range user.Awards {
		view.Achievements.Awards = append(view.Achievements.Awards, a.Description)
	}
	for _, p := range user.Publications {
		view.Achievements.Publications = append(view.Achievements.Publications, dto.PublicationItem{
			Title:       p.Title,
			Description: p.Description,
		})
	}
	for _, r := range user.Recognitions {
		view.Achievements.Recognition = append(view.Achievements.Recognition, r.Description)
	}
	return view
}

func newOwner(req *dto.ProfileRequest) *models.User {
	user := &models.User{
		ID:             uuid.New(),
		Slot:           models.OwnerSlot,
		WritingsCount:  0,
		PhotosCount:    0,
		FollowersCount: 0,
	}
	cols := profileColumns(req, false)
	user.Name = cols["name"].(string)
	user.Email = cols["email"].(string)
	user.Title = cols["title"].(string)
	user.Bio = cols["bio"].(string)
	user.Image = cols["image"].(string)
	user.Location = cols["location"].(string)
	user.Website = cols["website"].(string)
	user.TwitterHandle = cols["twitter_handle"].(string)
	user.InstagramHandle = cols["instagram_handle"].(string)
	user.FacebookHandle = cols["facebook_handle"].(string)
	user.Education = cols["education"].(string)
	user.Experience = cols["experience"].(string)
	user.Interests = cols["interests"].(string)
	return user
}

// profileColumns flattens the request into user columns. Nested social/about
// values win over their flat counterparts. With partial set, absent fields are
// left out; otherwise they are written as empty strings.
func profileColumns(req *dto.ProfileRequest, partial bool) map[string]interface{} {
	cols := make(map[string]interface{})
	set := func(column string, values ...*string) {
		for _, v := range values {
			if v != nil {
				cols[column] = *v
				return
			}
		}
		if !partial {
			cols[column] = ""
		}
	}

	var social dto.SocialPatch
	if req.Social != nil {
		social = *req.Social
	}
	var about dto.AboutPatch
	if req.About != nil {
		about = *req.About
	}

	set("email", req.Email)
	set("title", req.Title)
	set("bio", req.Bio)
	set("image", req.Image)
	set("location", req.Location)
	set("website", req.Website)
	set("twitter_handle", social.Twitter, req.TwitterHandle)
	set("instagram_handle", social.Instagram, req.InstagramHandle)
	set("facebook_handle", social.Facebook, req.FacebookHandle)
	set("education", about.Education, req.Education)
	set("experience", about.Experience, req.Experience)
	set("interests", about.Interests, req.Interests)

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		cols["name"] = *req.Name
	} else if !partial || req.Name != nil {
		cols["name"] = defaultProfileName
	}
	if email, ok := cols["email"].(string); ok {
		cols["email"] = strings.TrimSpace(email)
	}
	return cols
}

func validateEmail(req *dto.ProfileRequest) error {
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func translateProfileError(err error) error {
	switch repository.KindOf(err) {
	case repository.KindNotFound:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case repository.KindConflict:
		if strings.Contains(repository.ConstraintOf(err), "slot") {
			return fmt.Errorf("%w: %w", ErrProfileExists, err)
		}
		return fmt.Errorf("%w: %w", ErrEmailTaken, err)
	}
	return err
}
