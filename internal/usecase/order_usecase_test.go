package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validPlaceOrderInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		CustomerName: "A",
		Email:        "a@b.com",
		Address:      "1 St",
		City:         "X",
		ZipCode:      "00000",
		TotalPrice:   19.99,
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: 1, Quantity: 2, Price: 9.995},
		},
	}
}

func TestOrderUsecase_PlaceOrder_MissingCustomerName(t *testing.T) {
	tx, _ := newFakeTx()
	uc := usecase.NewOrderUsecase(tx, new(OrderRepoMock), new(OrderItemRepoMock))

	in := validPlaceOrderInput()
	in.CustomerName = ""

	_, err := uc.PlaceOrder(context.Background(), in)
	assertErrContains(t, err, "customer_name required")

	// バリデーションで落ちた場合はトランザクションを開始しない
	assert.False(t, tx.called)
}

func TestOrderUsecase_PlaceOrder_EmptyItems(t *testing.T) {
	tx, _ := newFakeTx()
	uc := usecase.NewOrderUsecase(tx, new(OrderRepoMock), new(OrderItemRepoMock))

	in := validPlaceOrderInput()
	in.Items = nil

	_, err := uc.PlaceOrder(context.Background(), in)
	assertErrContains(t, err, "items required")
	assert.False(t, tx.called)
}

func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	ctx := context.Background()

	tx, repos := newFakeTx()
	uc := usecase.NewOrderUsecase(tx, new(OrderRepoMock), new(OrderItemRepoMock))

	repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerName == "A" &&
			o.Status == model.OrderStatusPending &&
			o.TotalPrice == 19.99
	})).Return(int64(42), nil)

	repos.products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Teddy", Stock: 10}, nil)
	repos.products.On("DecrementStock", mock.Anything, int64(1), int64(2)).Return(nil)

	repos.items.On("CreateBulk", mock.Anything, int64(42), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 &&
			items[0].ProductID == 1 &&
			items[0].Quantity == 2 &&
			items[0].Price == 9.995
	})).Return(nil)

	orderID, err := uc.PlaceOrder(ctx, validPlaceOrderInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	repos.orders.AssertExpectations(t)
	repos.products.AssertExpectations(t)
	repos.items.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_MissingProductSkipsDecrement(t *testing.T) {
	ctx := context.Background()

	tx, repos := newFakeTx()
	uc := usecase.NewOrderUsecase(tx, new(OrderRepoMock), new(OrderItemRepoMock))

	in := validPlaceOrderInput()
	in.Items = []usecase.PlaceOrderItemInput{
		{ProductID: 1, Quantity: 2, Price: 9.995},
		{ProductID: 2, Quantity: 1, Price: 5.0},
	}

	repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)

	repos.products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Stock: 10}, nil)
	repos.products.On("DecrementStock", mock.Anything, int64(1), int64(2)).Return(nil)

	// 商品2は削除済み。在庫減算はスキップされるが明細は作られる。
	repos.products.On("FindByID", mock.Anything, int64(2)).
		Return(model.Product{}, repo.ErrNotFound)

	repos.items.On("CreateBulk", mock.Anything, int64(7), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 2
	})).Return(nil)

	orderID, err := uc.PlaceOrder(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), orderID)

	repos.products.AssertNotCalled(t, "DecrementStock", mock.Anything, int64(2), mock.Anything)
	repos.items.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_DataErrorRollsBack(t *testing.T) {
	ctx := context.Background()

	tx, repos := newFakeTx()
	uc := usecase.NewOrderUsecase(tx, new(OrderRepoMock), new(OrderItemRepoMock))

	repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(9), nil)
	repos.products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1}, nil)
	repos.products.On("DecrementStock", mock.Anything, int64(1), int64(2)).Return(nil)
	repos.items.On("CreateBulk", mock.Anything, int64(9), mock.Anything).
		Return(errors.New("insert failed"))

	orderID, err := uc.PlaceOrder(ctx, validPlaceOrderInput())
	assertErrContains(t, err, "insert failed")
	assert.Equal(t, int64(0), orderID)

	// データ層の失敗は400で返る
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestOrderUsecase_AdminListOrders_ResolvesProductNames(t *testing.T) {
	ctx := context.Background()

	tx, repos := newFakeTx()
	uc := usecase.NewOrderUsecase(tx, new(OrderRepoMock), new(OrderItemRepoMock))

	repos.orders.On("ListAllDesc", mock.Anything).Return([]model.Order{
		{ID: 2, CustomerName: "B", Status: "Pending", TotalPrice: 5},
		{ID: 1, CustomerName: "A", Status: "Shipped", TotalPrice: 10},
	}, nil)

	repos.items.On("ListByOrderID", mock.Anything, int64(2)).Return([]model.OrderItem{
		{ID: 21, OrderID: 2, ProductID: 5, Quantity: 1, Price: 5},
	}, nil)
	repos.items.On("ListByOrderID", mock.Anything, int64(1)).Return([]model.OrderItem{
		{ID: 11, OrderID: 1, ProductID: 9, Quantity: 2, Price: 5},
	}, nil)

	repos.products.On("FindByID", mock.Anything, int64(5)).
		Return(model.Product{ID: 5, Name: "Robot Dog"}, nil)
	// 商品9は削除済み
	repos.products.On("FindByID", mock.Anything, int64(9)).
		Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.AdminListOrders(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, "Robot Dog", out[0].Items[0].ProductName)
	assert.Equal(t, "Unknown", out[1].Items[0].ProductName)
}

func TestOrderUsecase_AdminUpdateOrderStatus_NotFound(t *testing.T) {
	tx, _ := newFakeTx()
	orders := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(tx, orders, new(OrderItemRepoMock))

	orders.On("FindByID", mock.Anything, int64(99)).
		Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.AdminUpdateOrderStatus(context.Background(), 99, "Shipped")
	assertErrContains(t, err, "not found")
}

func TestOrderUsecase_AdminUpdateOrderStatus_Success(t *testing.T) {
	tx, _ := newFakeTx()
	orders := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(tx, orders, new(OrderItemRepoMock))

	orders.On("FindByID", mock.Anything, int64(3)).
		Return(model.Order{ID: 3, Status: "Pending"}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(3), "Shipped").Return(nil)

	o, err := uc.AdminUpdateOrderStatus(context.Background(), 3, "Shipped")
	assert.NoError(t, err)
	assert.Equal(t, "Shipped", o.Status)

	orders.AssertExpectations(t)
}

func TestOrderUsecase_AdminUpdateOrderStatus_EmptyKeepsCurrent(t *testing.T) {
	tx, _ := newFakeTx()
	orders := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(tx, orders, new(OrderItemRepoMock))

	orders.On("FindByID", mock.Anything, int64(3)).
		Return(model.Order{ID: 3, Status: "Pending"}, nil)

	o, err := uc.AdminUpdateOrderStatus(context.Background(), 3, "")
	assert.NoError(t, err)
	assert.Equal(t, "Pending", o.Status)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
