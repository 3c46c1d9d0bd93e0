package dto

// --- View model ---

// ProfileResponse is the nested profile view model combining the User columns
// with its three achievement collections.
type ProfileResponse struct {
	ID           string       `json:"id,omitempty" yaml:"-"`
	Name         string       `json:"name" yaml:"name"`
	Title        string       `json:"title" yaml:"title"`
	Bio          string       `json:"bio" yaml:"bio"`
	Image        string       `json:"image" yaml:"image"`
	Email        string       `json:"email" yaml:"email"`
	Location     string       `json:"location" yaml:"location"`
	Website      string       `json:"website" yaml:"website"`
	Social       SocialLinks  `json:"social" yaml:"social"`
	About        AboutSection `json:"about" yaml:"about"`
	Stats        ProfileStats `json:"stats" yaml:"stats"`
	Achievements Achievements `json:"achievements" yaml:"achievements"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter" yaml:"twitter"`
	Instagram string `json:"instagram" yaml:"instagram"`
	Facebook  string `json:"facebook" yaml:"facebook"`
}

type AboutSection struct {
	Education  string `json:"education" yaml:"education"`
	Experience string `json:"experience" yaml:"experience"`
	Interests  string `json:"interests" yaml:"interests"`
}

type ProfileStats struct {
	Writings  int `json:"writings" yaml:"writings"`
	Photos    int `json:"photos" yaml:"photos"`
	Followers int `json:"followers" yaml:"followers"`
}

type Achievements struct {
	Awards       []string          `json:"awards" yaml:"awards"`
	Publications []PublicationItem `json:"publications" yaml:"publications"`
	Recognition  []string          `json:"recognition" yaml:"recognition"`
}

type PublicationItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// --- Requests ---

// ProfileRequest accepts both the nested shape (social, about) and the flat
// column names. Nil means the field was absent from the payload.
type ProfileRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
	Email    *string `json:"email"`
	Location *string `json:"location"`
	Website  *string `json:"website"`

	TwitterHandle   *string `json:"twitterHandle"`
	InstagramHandle *string `json:"instagramHandle"`
	FacebookHandle  *string `json:"facebookHandle"`
	Education       *string `json:"education"`
	Experience      *string `json:"experience"`
	Interests       *string `json:"interests"`

	Social       *SocialPatch         `json:"social"`
	About        *AboutPatch          `json:"about"`
	Achievements *AchievementsRequest `json:"achievements"`
}

type SocialPatch struct {
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
}

type AboutPatch struct {
	Education  *string `json:"education"`
	Experience *string `json:"experience"`
	Interests  *string `json:"interests"`
}

// AchievementsRequest replaces a collection only when its key is present
// (a nil slice means "leave untouched", an empty slice means "clear").
type AchievementsRequest struct {
	Awards       []string          `json:"awards"`
	Publications []PublicationItem `json:"publications"`
	Recognition  []string          `json:"recognition"`
}

type ProfileSaveResponse struct {
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
}
