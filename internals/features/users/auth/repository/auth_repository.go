// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jemaat_backend/internals/models"
)

/* ====================== ADMIN USER ====================== */

func FindAdminByUsername(db *gorm.DB, username string) (*models.AdminUserModel, error) {
	var user models.AdminUserModel
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindAdminByID(db *gorm.DB, id uuid.UUID) (*models.AdminUserModel, error) {
	var user models.AdminUserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateAdmin(db *gorm.DB, user *models.AdminUserModel) error {
	return db.Create(user).Error
}

func UpdateAdminPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&models.AdminUserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}
