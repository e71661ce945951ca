package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/seed"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	// .envはあれば読む。無ければ環境変数とデフォルトで動く。
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Admin{},
		&model.AdminSession{},
		&model.WebsiteSetting{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminGormRepository(gormDB)
	sessionRepo := infraRepo.NewSessionGormRepository(gormDB)
	settingRepo := infraRepo.NewSettingGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	ctx := context.Background()

	//初回起動時のデフォルトデータ
	if err := seed.EnsureDefaults(ctx, adminRepo, settingRepo); err != nil {
		log.Fatalf("seed: %v", err)
	}

	//期限切れセッションの掃除
	if err := sessionRepo.DeleteExpired(ctx); err != nil {
		log.Warnf("session cleanup: %v", err)
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo)
	authUC := usecase.NewAuthUsecase(adminRepo, sessionRepo, cfg.SessionTTL)
	settingUC := usecase.NewSettingUsecase(settingRepo, txManager)
	statsUC := usecase.NewStatsUsecase(productRepo, orderRepo)
	uploadUC := usecase.NewUploadUsecase(cfg.UploadDir)

	//Handler生成
	handlers := server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		Order:        handler.NewOrderHandler(orderUC),
		Setting:      handler.NewSettingHandler(settingUC),
		AdminAuth:    handler.NewAdminAuthHandler(authUC, cfg),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		AdminOrder:   handler.NewAdminOrderHandler(orderUC),
		AdminSetting: handler.NewAdminSettingHandler(settingUC),
		AdminStats:   handler.NewAdminStatsHandler(statsUC),
		Upload:       handler.NewUploadHandler(uploadUC),
	}

	//Server起動
	e := server.New(cfg, handlers, sessionRepo, adminRepo)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
