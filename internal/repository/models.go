package repository

import "time"

type User struct {
	ID           string   `gorm:"primaryKey;autoIncrement:false"`
	Username     string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Roles        []string `gorm:"type:text;serializer:json;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Project struct {
	ID          string `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	CreatorID   string `gorm:"size:36;not null;index"`
	Tasks       []Task `gorm:"foreignKey:ProjectID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Task struct {
	ID          string `gorm:"primaryKey;autoIncrement:false"`
	ProjectID   string `gorm:"size:36;not null;index"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:16;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserUpdate holds the optional user fields of a partial update; nil fields
// are left untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
}

type ProjectUpdate struct {
	Name        *string
	Description *string
}
