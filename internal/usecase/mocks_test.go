package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) DecrementStock(ctx context.Context, id int64, qty int64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListAllDesc(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) SumTotalPrice(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) FindByID(ctx context.Context, id int64) (model.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) FindByUsername(ctx context.Context, username string) (model.Admin, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) Create(ctx context.Context, a model.Admin) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

type SessionRepoMock struct{ mock.Mock }

func (m *SessionRepoMock) Create(ctx context.Context, s model.AdminSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SessionRepoMock) FindByToken(ctx context.Context, token string) (model.AdminSession, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(model.AdminSession)
	return s, args.Error(1)
}

func (m *SessionRepoMock) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *SessionRepoMock) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type SettingRepoMock struct{ mock.Mock }

func (m *SettingRepoMock) ListAll(ctx context.Context) ([]model.WebsiteSetting, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.WebsiteSetting)
	return items, args.Error(1)
}

func (m *SettingRepoMock) FindByKey(ctx context.Context, key string) (model.WebsiteSetting, error) {
	args := m.Called(ctx, key)
	s, _ := args.Get(0).(model.WebsiteSetting)
	return s, args.Error(1)
}

func (m *SettingRepoMock) Upsert(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// =====================
// Tx fake
// =====================

// fnにモックrepoを渡すだけのTransactionManager。
// fnがerrorを返したらそのまま返す（＝ロールバック相当）。
type fakeTxRepos struct {
	orders   *OrderRepoMock
	items    *OrderItemRepoMock
	products *ProductRepoMock
	settings *SettingRepoMock
}

func (r *fakeTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *fakeTxRepos) OrderItems() repo.OrderItemRepository { return r.items }
func (r *fakeTxRepos) Products() repo.ProductRepository     { return r.products }
func (r *fakeTxRepos) Settings() repo.SettingRepository     { return r.settings }

type fakeTxManager struct {
	repos  *fakeTxRepos
	called bool
}

func (tm *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	tm.called = true
	return fn(tm.repos)
}

func newFakeTx() (*fakeTxManager, *fakeTxRepos) {
	repos := &fakeTxRepos{
		orders:   new(OrderRepoMock),
		items:    new(OrderItemRepoMock),
		products: new(ProductRepoMock),
		settings: new(SettingRepoMock),
	}
	return &fakeTxManager{repos: repos}, repos
}

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), want)
	}
}
