package model

import "time"

// サーバー側セッション。Cookieにはtokenだけを載せる。
type AdminSession struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	AdminID   int64     `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}
