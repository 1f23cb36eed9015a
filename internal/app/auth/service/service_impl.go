package service

import (
	"context"
	"errors"
	"time"

	"github.com/pocketmint/auth-service/internal/adapters/transport/http/dto"
	customErrors "github.com/pocketmint/auth-service/internal/domain/auth/errors"
	"github.com/pocketmint/auth-service/internal/domain/auth/jwt"
	"github.com/pocketmint/auth-service/internal/domain/auth/model"
	repo "github.com/pocketmint/auth-service/internal/domain/auth/repo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authService struct {
	userRepo  repo.UserRepo
	tokenRepo repo.TokenRepo
	jwtUtil   jwt.JWTUtil
	v         *validator.Validate
}

type Service interface {
	Signup(context.Context, dto.SignupDTO) error
	Login(context.Context, dto.LoginDTO) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, email string) (model.User, error)
}

func New(ur repo.UserRepo, tr repo.TokenRepo, jm jwt.JWTUtil, v *validator.Validate) Service {
	return &authService{
		userRepo: ur, tokenRepo: tr, jwtUtil: jm, v: v,
	}
}

func (a *authService) Signup(ctx context.Context, in dto.SignupDTO) error {
	if err := a.v.Struct(in); err != nil {
		return customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return customErrors.WrapInternal(err, "Signup")
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: string(passwordHash),
		Amount:       in.Amount,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := a.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return customErrors.ErrAlreadyExists
		}
		return customErrors.WrapInternal(err, "Signup")
	}

	return nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, customErrors.ErrNotFound
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	at, err := a.jwtUtil.GenerateAccessToken(user.Email)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "GenerateAccessToken")
	}
	rt, err := a.jwtUtil.GenerateRefreshToken(user.Email)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "GenerateRefreshToken")
	}

	// Каждый логин создаёт новую запись: параллельные сессии разрешены.
	if err := a.tokenRepo.Store(ctx, rt); err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "StoreRefresh")
	}

	return model.TokenPair{
		AccessToken:  at,
		RefreshToken: rt,
	}, nil
}

// Refresh exchanges a refresh token for a fresh access token. Only the
// signature and expiry are checked; store membership is not consulted, so a
// token revoked by logout keeps working until it expires.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.jwtUtil.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", customErrors.ErrInvalidToken
	}

	at, err := a.jwtUtil.GenerateAccessToken(claims.Email)
	if err != nil {
		return "", customErrors.WrapInternal(err, "GenerateAccessToken")
	}

	return at, nil
}

func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := a.tokenRepo.Delete(ctx, refreshToken); err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context, email string) (model.User, error) {
	user, err := a.userRepo.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.ErrNotFound
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "CurrentUser")
	}
	return user, nil
}
