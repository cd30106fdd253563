package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type User struct {
	Repo[models.User]
}

func NewUser(db *gorm.DB) *User {
	return &User{Repo: NewRepo[models.User](db)}
}

// FindByUsername 用户名查询
func (d *User) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (d *User) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := d.Repo.IsExist(ctx, "username = ?", username)
	return exist
}
