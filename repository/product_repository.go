package repository

import (
	"github.com/SpideeCode/uberPharma/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListForPharmacies(pharmacyIDs []uint) ([]entity.Product, error) {
	if len(pharmacyIDs) == 0 {
		return nil, nil
	}
	var products []entity.Product
	err := r.DB.Where("pharmacy_id IN ?", pharmacyIDs).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Product{}).Count(&n).Error
	return n, err
}

func (r *ProductRepository) CountOutOfStock() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Product{}).Where("stock <= 0").Count(&n).Error
	return n, err
}
