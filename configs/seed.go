package configs

import (
	"log"

	"github.com/SpideeCode/uberPharma/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedDemoUsers creates one pharmacy and one client account for local
// development. Enabled with SEED_DEMO=true.
func SeedDemoUsers(cfg *Config) error {
	if !cfg.SeedDemo {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := []entity.User{
		{Name: "Pharmacy", Email: "pharmacy@site.test", Password: string(hash), Role: entity.RolePharmacy},
		{Name: "Client", Email: "client@site.test", Password: string(hash), Role: entity.RoleClient},
	}
	for _, u := range demo {
		var count int64
		db.Model(&entity.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Println("seeded demo user:", u.Email)
	}
	return nil
}
