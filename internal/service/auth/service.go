package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/auth"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/user"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/database"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	tokenRepo    auth.TokenRepository
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	tokenRepo auth.TokenRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		tokenRepo:    tokenRepo,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if !u.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if token.Expiration().Before(time.Now()) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	valid, err := s.tokenRepo.IsRefreshTokenValid(ctx, userID, hashToken(refreshToken))
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !valid {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !u.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	// Rotate: the presented refresh token is spent.
	if err := s.tokenRepo.RevokeRefreshToken(ctx, hashToken(refreshToken)); err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeRefreshToken(ctx, hashToken(refreshToken))
}

func (s *AuthServiceImpl) RegisterUser(ctx context.Context, req auth.RegisterUserRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return auth.UserResponse{}, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
		IsActive:     true,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:         created.ID,
		Username:   created.Username,
		Role:       string(created.Role),
		EmployeeID: created.EmployeeID,
		IsActive:   created.IsActive,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.StoreRefreshToken(ctx, u.ID, hashToken(refreshToken), time.Unix(refreshExp, 0)); err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
		UserID:                u.ID,
		Username:              u.Username,
		Role:                  string(u.Role),
		EmployeeID:            u.EmployeeID,
	}, nil
}
