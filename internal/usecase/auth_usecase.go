package usecase

import (
	"context"
	"errors"

	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/domain/repository"
	"hospital-patient-api/pkg/token"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, bearerToken string) error
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	tokenStore token.Store
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	tokenStore token.Store,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		tokenStore: tokenStore,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		// Burn a hash comparison anyway so a missing account costs the
		// same as a wrong password.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000uGyiOCKJyOAKNugr5I6beGzUB9E7UIG6"), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	plainToken, err := u.tokenStore.Issue(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to issue token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{Token: plainToken}, nil
}

func (u *authUsecase) Logout(ctx context.Context, bearerToken string) error {
	if err := u.tokenStore.Revoke(ctx, bearerToken); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}
	return nil
}
