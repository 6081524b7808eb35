package models

// Story represents a story row. Creator references user.id; the
// reference is validated inside the creating transaction.
type Story struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"not null"`
	Creator int64  `json:"creator" gorm:"column:creator;not null"`
}

// TableName returns the database table name for the Story model.
func (Story) TableName() string {
	return "story"
}

// StoryWithCreator is a story joined with its creator's display name,
// as produced by the list query and returned after creation.
type StoryWithCreator struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CreatorName string `json:"creator"`
}
