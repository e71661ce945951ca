// Package seedは初回起動時のデフォルトデータを用意する。
package seed

import (
	"context"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@toywonderland.com"
)

// 設定キーのベースライン。既にあるキーは触らない。
var defaultSettings = map[string]string{
	"website_name":         "UNICORNKART LLC",
	"company_address":      "30 N GOULD ST STE 4000, SHERIDAN, WY 82801, United States",
	"company_ein":          "38-4362997",
	"company_phone":        "+1 (555) 123-4567",
	"company_email":        "info@unicornkart.com",
	"privacy_policy":       "Your privacy policy content here...",
	"terms_and_conditions": "Your terms and conditions content here...",
	"refund_policy":        "Your refund policy content here...",
	"about_us":             "Welcome to UNICORNKART LLC - Your trusted source for quality toys and products!",
	"meta_description":     "Shop the best toys and products at UNICORNKART LLC",
	"meta_keywords":        "toys, kids toys, educational toys, fun toys, unicornkart",
}

// EnsureDefaultsはデフォルト管理者とベースライン設定を揃える。
// 何度呼んでも既存データは変更しない。
func EnsureDefaults(ctx context.Context, admins repo.AdminRepository, settings repo.SettingRepository) error {
	if err := ensureDefaultAdmin(ctx, admins); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := ensureDefaultSettings(ctx, settings); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

func ensureDefaultAdmin(ctx context.Context, admins repo.AdminRepository) error {
	_, err := admins.FindByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if err != repo.ErrNotFound {
		return err
	}

	hash, err := usecase.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	_, err = admins.Create(ctx, model.Admin{
		Username:     DefaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
	})
	return err
}

func ensureDefaultSettings(ctx context.Context, settings repo.SettingRepository) error {
	for key, value := range defaultSettings {
		_, err := settings.FindByKey(ctx, key)
		if err == nil {
			continue
		}
		if err != repo.ErrNotFound {
			return err
		}
		if err := settings.Upsert(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SeedProductsはサンプルカタログを投入する。商品が1件でもあれば何もしない。
func SeedProducts(ctx context.Context, products repo.ProductRepository) (int, error) {
	count, err := products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, p := range SampleProducts() {
		if _, err := products.Create(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(SampleProducts()), nil
}

func SampleProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Lego Space Shuttle",
			Description: "Build your own space shuttle with this detailed Lego set. Includes astronaut minifigures.",
			Price:       49.99,
			ImageURL:    "https://images.unsplash.com/photo-1585366119957-e9730b6d0f60?auto=format&fit=crop&w=800&q=80",
			Category:    "Construction",
			Stock:       50,
		},
		{
			Name:        "Plush Teddy Bear",
			Description: "Soft and cuddly teddy bear, perfect for hugs. 12 inches tall.",
			Price:       19.99,
			ImageURL:    "https://images.unsplash.com/photo-1559454403-b8fb87521bc7?auto=format&fit=crop&w=800&q=80",
			Category:    "Plush",
			Stock:       100,
		},
		{
			Name:        "Remote Control Car",
			Description: "High-speed remote control car with rechargeable battery. Off-road capabilities.",
			Price:       34.99,
			ImageURL:    "https://images.unsplash.com/photo-1594787318286-3d835c1d207f?auto=format&fit=crop&w=800&q=80",
			Category:    "Electronics",
			Stock:       30,
		},
		{
			Name:        "Wooden Building Blocks",
			Description: "Classic wooden building blocks set. 50 pieces of various shapes and colors.",
			Price:       24.99,
			ImageURL:    "https://images.unsplash.com/photo-1515488042361-ee00e0ddd4e4?auto=format&fit=crop&w=800&q=80",
			Category:    "Construction",
			Stock:       75,
		},
		{
			Name:        "Action Figure Hero",
			Description: "Poseable action figure with accessories. 6 inches tall.",
			Price:       14.99,
			ImageURL:    "https://images.unsplash.com/photo-1608354580875-30bd4168b351?auto=format&fit=crop&w=800&q=80",
			Category:    "Action Figures",
			Stock:       60,
		},
		{
			Name:        "Dollhouse Set",
			Description: "Two-story dollhouse with furniture and miniature family figures.",
			Price:       89.99,
			ImageURL:    "https://images.unsplash.com/photo-1513883049090-d0b7439f4904?auto=format&fit=crop&w=800&q=80",
			Category:    "Dolls",
			Stock:       20,
		},
		{
			Name:        "Educational Puzzle",
			Description: "100-piece puzzle featuring a map of the world. Great for learning geography.",
			Price:       12.99,
			ImageURL:    "https://images.unsplash.com/photo-1587654780291-39c940483713?auto=format&fit=crop&w=800&q=80",
			Category:    "Educational",
			Stock:       150,
		},
		{
			Name:        "Toy Kitchen Set",
			Description: "Complete toy kitchen with pots, pans, and play food. Realistic sounds.",
			Price:       59.99,
			ImageURL:    "https://images.unsplash.com/photo-1560869713-7d0a29430803?auto=format&fit=crop&w=800&q=80",
			Category:    "Role Play",
			Stock:       25,
		},
		{
			Name:        "Art Supplies Kit",
			Description: "Includes crayons, markers, colored pencils, and a sketchbook.",
			Price:       29.99,
			ImageURL:    "https://images.unsplash.com/photo-1513364776144-60967b0f800f?auto=format&fit=crop&w=800&q=80",
			Category:    "Arts & Crafts",
			Stock:       80,
		},
		{
			Name:        "Board Game Classic",
			Description: "Fun for the whole family. Strategy and luck combined.",
			Price:       22.99,
			ImageURL:    "https://images.unsplash.com/photo-1610890716171-6b1c9f2bd40c?auto=format&fit=crop&w=800&q=80",
			Category:    "Games",
			Stock:       40,
		},
		{
			Name:        "Robot Dog",
			Description: "Interactive robot dog that barks, walks, and responds to touch.",
			Price:       44.99,
			ImageURL:    "https://images.unsplash.com/photo-1535378437323-9555f3e7f5bb?auto=format&fit=crop&w=800&q=80",
			Category:    "Electronics",
			Stock:       35,
		},
		{
			Name:        "Dinosaur Figure",
			Description: "Realistic T-Rex dinosaur figure. Roaring sound effect.",
			Price:       17.99,
			ImageURL:    "https://images.unsplash.com/photo-1570473633763-269776472d39?auto=format&fit=crop&w=800&q=80",
			Category:    "Action Figures",
			Stock:       90,
		},
	}
}
