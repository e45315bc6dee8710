package service

type PlaylistRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// nil keeps the current visibility on update and means public on create
	IsPublic *bool `json:"isPublic"`
}

type PlaylistVideoRequest struct {
	VideoId string `json:"videoId"`
}
