package schema

import "time"

// KeyValueStore stores arbitrary key-value pairs for processing state.
// Used for trade idempotency keys ("trade:<id>") and root sweeper cursors ("root_cursor:<chain>:<token>").
type KeyValueStore struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime;type:timestamptz"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;type:timestamptz"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
