package response_models

type Orphanage struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	About          string  `json:"about"`
	Instructions   string  `json:"instructions"`
	OpeningHours   string  `json:"opening_hours"`
	OpenOnWeekends bool    `json:"open_on_weekends"`
	Images         []Image `json:"images"`
}

type Image struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}
