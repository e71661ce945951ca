package model

// Priceは購入時点の単価スナップショット。商品側の価格変更に追従しない。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"order_id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
