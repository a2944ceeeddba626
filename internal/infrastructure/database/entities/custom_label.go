package entities

import "time"

// CustomLabel models the persisted representation of a custom label.
// The resource declares no columns beyond identity and timestamps yet.
type CustomLabel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CustomLabel) TableName() string {
	return "custom_labels"
}

// All lists every entity discovered by schema synchronization.
func All() []any {
	return []any{
		&CustomLabel{},
	}
}
