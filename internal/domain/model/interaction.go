package model

import "time"

// The interaction mirror is an advisory copy of the public site's client-side
// like/comment widget. The browser's local storage is the state of record;
// this data may drift from it and no reconciliation is attempted.

// Comment is a visitor comment on a gallery image.
type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"time"`
}

// ImageInteractions is the mirrored state of one image.
type ImageInteractions struct {
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
}

// LikeTally is the result of applying a like or unlike.
type LikeTally struct {
	Likes      int `json:"likes"`
	TotalLikes int `json:"totalLikes"`
}

// InteractionStats aggregates the mirror across all images.
type InteractionStats struct {
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
	TotalImages   int `json:"totalImages"`
}
