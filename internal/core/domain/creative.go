package domain

// Creative is the provider-supplied presentation of a campaign. The engine
// stores it but never interprets it.
type Creative struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
