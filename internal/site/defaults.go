package site

import (
	"fmt"
	"os"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"gopkg.in/yaml.v3"
)

// Defaults holds the placeholder content served before the owner has saved a
// profile.
type Defaults struct {
	Profile dto.ProfileResponse `yaml:"profile"`
}

// Builtin returns the shipped placeholder profile.
func Builtin() *Defaults {
	return &Defaults{
		Profile: dto.ProfileResponse{
			Name:     "Jane Writer",
			Title:    "Writer & Photographer",
			Bio:      "Creative writer specializing in fiction and photography with a passion for storytelling through both words and images.",
			Image:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=1287&auto=format&fit=crop",
			Email:    "jane@example.com",
			Location: "London, UK",
			Website:  "https://example.com",
			Social: dto.SocialLinks{
				Twitter:   "@janewriter",
				Instagram: "@janewriterphotos",
				Facebook:  "janewriter",
			},
			About: dto.AboutSection{
				Education:  "MFA in Creative Writing from University of Arts",
				Experience: "10+ years of writing and photography experience",
				Interests:  "Travel, Literature, Visual Arts",
			},
			Stats: dto.ProfileStats{
				Writings:  24,
				Photos:    52,
				Followers: 250,
			},
			Achievements: dto.Achievements{
				Awards: []string{
					"National Book Award Finalist 2023",
					"Photography Excellence Award 2022",
				},
				Publications: []dto.PublicationItem{
					{Title: "The Silent Echo", Description: "Published in The New Yorker, 2023"},
					{Title: "Shifting Perspectives", Description: "Photo essay in National Geographic, 2022"},
				},
				Recognition: []string{
					"Featured in Writer's Digest",
					"Photography exhibition at Modern Art Gallery",
				},
			},
		},
	}
}

// Load reads a YAML override on top of the builtin defaults. An empty path
// returns the builtin defaults unchanged.
func Load(path string) (*Defaults, error) {
	defaults := Builtin()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}
	return defaults, nil
}

// FallbackProfile returns a copy of the placeholder profile so callers can
// not mutate the shared slices.
func (d *Defaults) FallbackProfile() dto.ProfileResponse {
	p := d.Profile
	p.Achievements.Awards = append([]string{}, d.Profile.Achievements.Awards...)
	p.Achievements.Publications = append([]dto.PublicationItem{}, d.Profile.Achievements.Publications...)
	p.Achievements.Recognition = append([]string{}, d.Profile.Achievements.Recognition...)
	return p
}
