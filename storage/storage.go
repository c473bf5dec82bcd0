package storage

import (
	"gorm.io/gorm"
)

// Storage is the sole boundary between the application and persistent state.
// Every operation is a narrow, single-purpose method translating into
// relational queries; paired row/counter writes run inside one transaction.
type Storage struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{DB: db}
}
