package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
	CartRepo *repository.CartRepository
}

func NewAuthService(db *gorm.DB, ur *repository.UserRepository, cr *repository.CartRepository) *AuthService {
	return &AuthService{DB: db, UserRepo: ur, CartRepo: cr}
}

type RegisterIn struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	FullName string      `json:"fullName" binding:"required"`
	Role     entity.Role `json:"role"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates the user and their cart in the same transaction;
// a customer without a cart must never exist.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if role != entity.RoleCustomer && role != entity.RoleOwner {
		return nil, fmt.Errorf("%w: cannot self-register as %s", apperr.ErrOperationNotAllowed, role)
	}

	taken, err := s.UserRepo.EmailTaken(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrOperationNotAllowed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    in.Email,
		Password: string(hash),
		FullName: in.FullName,
		Role:     role,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}
		return s.CartRepo.Create(tx, &entity.Cart{CustomerID: user.ID, Total: 0})
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user registered")
	return user, nil
}

func (s *AuthService) Login(in *LoginIn) (*entity.User, error) {
	user, err := s.UserRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: bad credentials", apperr.ErrAccessDenied)
	}
	return user, nil
}

func (s *AuthService) Profile(actor Principal) (*entity.User, error) {
	return s.UserRepo.FindByID(actor.ID)
}
