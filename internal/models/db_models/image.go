package db_models

// Image references an uploaded file by its stored name, never by URL.
type Image struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Path        string `gorm:"size:255;not null"`
	OrphanageID int64  `gorm:"index;not null"`
}
