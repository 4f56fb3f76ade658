package services

import (
	"errors"
	"strings"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService backs the admin user-management screens.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type CreateUserIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Repo.FindAll()
}

func (s *UserService) Create(in *CreateUserIn) (*entity.User, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	count, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateRole(userID uint, roleStr string) (*entity.User, error) {
	role, ok := entity.ParseRole(roleStr)
	if !ok {
		return nil, ErrInvalidRole
	}
	if _, err := s.Repo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.Update(userID, map[string]any{"role": role}); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(userID)
}

func (s *UserService) Delete(userID uint) error {
	if _, err := s.Repo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(userID)
}
