package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{Repo: NewRepo[models.Category](db)}
}

// FindByName 根据名称查询板块
func (d *Category) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return d.Repo.FindByWhere(ctx, "name = ?", name)
}
