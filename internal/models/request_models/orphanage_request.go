package request_models

// CreateOrphanageRequest mirrors the multipart form sent by the web and
// mobile clients. Every field arrives as text; the service validates that
// coordinates and the weekend flag parse before converting them.
type CreateOrphanageRequest struct {
	Name           string `form:"name" json:"name" validate:"required,max=255"`
	Latitude       string `form:"latitude" json:"latitude" validate:"required,latitude"`
	Longitude      string `form:"longitude" json:"longitude" validate:"required,longitude"`
	About          string `form:"about" json:"about" validate:"required"`
	Instructions   string `form:"instructions" json:"instructions" validate:"required"`
	OpeningHours   string `form:"opening_hours" json:"opening_hours" validate:"required,max=255"`
	OpenOnWeekends string `form:"open_on_weekends" json:"open_on_weekends" validate:"required,boolean"`

	// Filled from the stored upload names, not bound from the body.
	Images []ImageInput `form:"-" json:"-" validate:"dive"`
}

type ImageInput struct {
	Path string `json:"path" validate:"required"`
}
