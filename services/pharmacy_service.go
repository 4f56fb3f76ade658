package services

import (
	"errors"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"gorm.io/gorm"
)

type PharmacyService struct {
	Repo *repository.PharmacyRepository
}

func NewPharmacyService(repo *repository.PharmacyRepository) *PharmacyService {
	return &PharmacyService{Repo: repo}
}

type PharmacyIn struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	IsOpen  *bool  `json:"is_open"`
}

func (s *PharmacyService) List() ([]entity.Pharmacy, error) {
	return s.Repo.FindAll()
}

func (s *PharmacyService) Detail(id uint) (*entity.Pharmacy, error) {
	p, err := s.Repo.FindByIDWithProducts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PharmacyService) ListOwned(p entity.Principal) ([]entity.Pharmacy, error) {
	return s.Repo.ListByOwner(p.UserID)
}

func (s *PharmacyService) Create(p entity.Principal, in *PharmacyIn) (*entity.Pharmacy, error) {
	pharmacy := &entity.Pharmacy{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		IsOpen:  true,
		UserID:  p.UserID,
	}
	if in.IsOpen != nil {
		pharmacy.IsOpen = *in.IsOpen
	}
	if err := s.Repo.Create(pharmacy); err != nil {
		return nil, err
	}
	return pharmacy, nil
}

// Update is allowed for the owner or an admin.
func (s *PharmacyService) Update(p entity.Principal, id uint, in *PharmacyIn) (*entity.Pharmacy, error) {
	pharmacy, err := s.ownedPharmacy(p, id)
	if err != nil {
		return nil, err
	}

	pharmacy.Name = in.Name
	pharmacy.Address = in.Address
	pharmacy.Phone = in.Phone
	if in.IsOpen != nil {
		pharmacy.IsOpen = *in.IsOpen
	}
	if err := s.Repo.Update(pharmacy); err != nil {
		return nil, err
	}
	return pharmacy, nil
}

func (s *PharmacyService) Delete(p entity.Principal, id uint) error {
	if _, err := s.ownedPharmacy(p, id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *PharmacyService) ownedPharmacy(p entity.Principal, id uint) (*entity.Pharmacy, error) {
	pharmacy, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pharmacy.UserID != p.UserID && p.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	return pharmacy, nil
}
