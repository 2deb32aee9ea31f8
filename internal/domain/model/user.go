package model

import "time"

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsAdmin      bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime"`
}

// トークンから解決した利用者
type Identity struct {
	UserID  string
	Name    string
	Email   string
	IsAdmin bool
}

// 管理者か本人のみ
func (i Identity) CanAccess(ownerID string) bool {
	return i.IsAdmin || (i.UserID != "" && i.UserID == ownerID)
}
