// サンプルカタログ投入コマンド。商品が空のときだけ入れる。
package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/seed"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)

	n, err := seed.SeedProducts(context.Background(), productRepo)
	if err != nil {
		log.Fatalf("seed products: %v", err)
	}

	if n == 0 {
		log.Info("database already contains products")
		return
	}
	log.Infof("seeded %d products", n)
}
