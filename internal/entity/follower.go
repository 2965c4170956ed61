package entity

import "time"

// Follower is a directed follow edge. The composite primary key makes the
// (follower, followed) pair unique, so a concurrent duplicate follow
// surfaces as a constraint violation rather than a second edge.
type Follower struct {
	CreatedAt time.Time

	FollowerID int64 `gorm:"primaryKey;autoIncrement:false"`
	Follower   User  `gorm:"foreignKey:FollowerID"`

	FollowedID int64 `gorm:"primaryKey;autoIncrement:false"`
	Followed   User  `gorm:"foreignKey:FollowedID"`
}
