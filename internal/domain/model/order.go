package model

import "time"

// ステータスは自由記述だが、新規注文はPendingで始まる
const OrderStatusPending = "Pending"

type Order struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email        string      `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string      `gorm:"type:varchar(50)" json:"phone"`
	Address      string      `gorm:"type:varchar(500);not null" json:"address"`
	City         string      `gorm:"type:varchar(100);not null" json:"city"`
	ZipCode      string      `gorm:"type:varchar(20);not null" json:"zip_code"`
	TotalPrice   float64     `gorm:"not null" json:"total_price"`
	Status       string      `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	Items        []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt    time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
