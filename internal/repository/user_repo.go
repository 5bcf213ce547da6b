package repository

import (
	"go-medisales-api/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByName(name string) (*model.User, error)
	FindByNameAndRole(name, role string) (*model.User, error)
	AdminExists() (bool, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindByName(name string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByNameAndRole(name, role string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("name = ? AND role = ?", name, role).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) AdminExists() (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
