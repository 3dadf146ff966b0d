package model

// Entry is a single key-value row in the relational storage backend.
type Entry struct {
	Key   string `gorm:"primaryKey"` // Key is the primary key
	Value string `gorm:"type:text"`
}
