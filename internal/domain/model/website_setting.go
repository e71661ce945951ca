package model

// keyの一意性以外にスキーマを持たない設定ストア
type WebsiteSetting struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
