package models

import "time"

// Follow is a directed edge meaning the follower's personal feed includes the
// followee's posts. The composite unique index is what guarantees at most one
// edge per pair: concurrent duplicate follow attempts are resolved by the
// store's constraint, not by a check in application code.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followee_id"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
