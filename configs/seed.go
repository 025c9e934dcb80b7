package configs

import (
	"fmt"

	"littlelemon/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGroups creates the Manager and Delivery Crew groups. Safe to run on every start.
func SeedGroups(db *gorm.DB) error {
	for _, role := range entity.Roles {
		g := entity.Group{}
		if err := db.Where(entity.Group{Name: string(role)}).FirstOrCreate(&g).Error; err != nil {
			return fmt.Errorf("seed group %q: %w", role, err)
		}
	}
	return nil
}

// SeedAdmin creates the first staff user from cfg.AdminUsername / cfg.AdminPassword.
func SeedAdmin(db *gorm.DB, cfg *Config, log logrus.FieldLogger) error {
	username := cfg.AdminUsername
	pass := cfg.AdminPassword
	if username == "" || pass == "" {
		log.Warn("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.WithField("username", username).Info("admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: username,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsStaff:  true,
	}
	return db.Create(&admin).Error
}
