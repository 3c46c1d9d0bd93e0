package dto

// PhotoInput is one photo in a create payload; only URL is required.
type PhotoInput struct {
	URL      string  `json:"url"`
	Title    *string `json:"title"`
	Filename string  `json:"filename"`
	Path     string  `json:"path"`
}

// CreatePhotosRequest accepts either a single photo or {"photos": [...]}.
type CreatePhotosRequest struct {
	PhotoInput
	Photos []PhotoInput `json:"photos"`
}

// Items returns the photos carried by the payload.
func (r *CreatePhotosRequest) Items() []PhotoInput {
	if r.Photos != nil {
		return r.Photos
	}
	return []PhotoInput{r.PhotoInput}
}

type UpdatePhotoRequest struct {
	URL      *string `json:"url"`
	Title    *string `json:"title"`
	Filename *string `json:"filename"`
	Path     *string `json:"path"`
}

type PhotoResponse struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	Title     *string `json:"title"`
	Date      string  `json:"date"`
	Filename  string  `json:"filename"`
	Path      string  `json:"path"`
	CreatedAt string  `json:"createdAt"`
}
