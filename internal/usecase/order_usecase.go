package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	items  repo.OrderItemRepository
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, items repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, items: items}
}

type PlaceOrderItemInput struct {
	ProductID int64
	Quantity  int64
	Price     float64
}

type PlaceOrderInput struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	ZipCode      string
	TotalPrice   float64 // クライアント申告値をそのまま保存する（再計算しない）
	Items        []PlaceOrderItemInput
}

// PlaceOrderは注文＋明細＋在庫減算をひとつのトランザクションで行う。
// 途中でエラーになれば全件ロールバック。部分的な書き込みは残らない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (int64, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "customer_name required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "email required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "address required")
	}
	if strings.TrimSpace(in.City) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "city required")
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "zip_code required")
	}
	if len(in.Items) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "items required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid item id")
		}
		if it.Quantity <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid item quantity")
		}
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()
		id, err := r.Orders().Create(ctx, model.Order{
			CustomerName: in.CustomerName,
			Email:        in.Email,
			Phone:        in.Phone,
			Address:      in.Address,
			City:         in.City,
			ZipCode:      in.ZipCode,
			TotalPrice:   in.TotalPrice,
			Status:       model.OrderStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}

		orderItems := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			orderItems = append(orderItems, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})

			// 商品が消えていたら在庫減算だけスキップ。明細は残す。
			_, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				continue
			}
			if err != nil {
				return err
			}

			// 下限チェックなし。マイナス在庫は許容する。
			if err := r.Products().DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}

		if err := r.OrderItems().CreateBulk(ctx, id, orderItems); err != nil {
			return err
		}

		orderID = id
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return 0, err
		}
		// データ層の失敗はロールバック済み。元実装に合わせて400で返す。
		return 0, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return orderID, nil
}

type AdminOrderItemOutput struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
}

type AdminOrderOutput struct {
	ID           int64                  `json:"id"`
	CustomerName string                 `json:"customer_name"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone"`
	Address      string                 `json:"address"`
	City         string                 `json:"city"`
	ZipCode      string                 `json:"zip_code"`
	TotalPrice   float64                `json:"total_price"`
	Status       string                 `json:"status"`
	Items        []AdminOrderItemOutput `json:"items"`
}

// 管理画面向け注文一覧。新しい順で、明細に商品名を解決して付ける。
// 商品が削除済みならUnknownで埋める。
func (u *OrderUsecase) AdminListOrders(ctx context.Context) ([]AdminOrderOutput, error) {
	var outs []AdminOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAllDesc(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]AdminOrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			outItems := make([]AdminOrderItemOutput, 0, len(items))
			for _, it := range items {
				name := "Unknown"
				p, err := r.Products().FindByID(ctx, it.ProductID)
				if err == nil {
					name = p.Name
				} else if err != repo.ErrNotFound {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}

				outItems = append(outItems, AdminOrderItemOutput{
					ID:          it.ID,
					ProductName: name,
					Quantity:    it.Quantity,
					Price:       it.Price,
				})
			}

			outs = append(outs, AdminOrderOutput{
				ID:           o.ID,
				CustomerName: o.CustomerName,
				Email:        o.Email,
				Phone:        o.Phone,
				Address:      o.Address,
				City:         o.City,
				ZipCode:      o.ZipCode,
				TotalPrice:   o.TotalPrice,
				Status:       o.Status,
				Items:        outItems,
			})
		}
		return nil
	})

	if err != nil {
		return []AdminOrderOutput{}, err
	}
	return outs, nil
}

// ステータスだけを更新する。空なら現状維持。
func (u *OrderUsecase) AdminUpdateOrderStatus(ctx context.Context, orderID int64, status string) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if strings.TrimSpace(status) == "" {
		return o, nil
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if err == repo.ErrNotFound {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.Status = status
	return o, nil
}
