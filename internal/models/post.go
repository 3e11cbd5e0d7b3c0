package models

import "time"

// labelRunes is how much of the text makes up the short display label.
const labelRunes = 15

// Post is a text entry published by an author, optionally tagged to a group
// and optionally illustrated with an image. The image bytes live in the
// external media store; only an opaque URL is kept here.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	ImageURL string `json:"image_url,omitempty"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label returns the text-derived short label used to identify the post in log
// lines: the first 15 characters of the text. Never persisted.
func (p *Post) Label() string {
	runes := []rune(p.Text)
	if len(runes) <= labelRunes {
		return p.Text
	}
	return string(runes[:labelRunes])
}
