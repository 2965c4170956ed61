package entity

import (
	"time"
)

// Base carries the identity and bookkeeping columns shared by all
// entities. Ids are issued by the database, which makes them usable as a
// deterministic secondary sort key (insertion order).
type Base struct {
	ID        int64 `gorm:"primarykey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
