package entity

type Post struct {
	Base

	AuthorID int64 `gorm:"index"`
	Author   User  `gorm:"foreignKey:AuthorID"`

	Body string `gorm:"type:text"`

	// Language is the detected language code of the body, or empty when
	// detection was unknown or ambiguous.
	Language string `gorm:"type:varchar(5)"`
}
