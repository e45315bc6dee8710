package handlers

// LikeParam is the body of the like toggle.
type LikeParam struct {
	Type string `json:"type" form:"type"`
}

type CommentParam struct {
	Content string `json:"content" form:"content"`
}
