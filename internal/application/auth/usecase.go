package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/pkg/jwt"
)

// JWTConfig token üretim ayarları.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase kimlik doğrulama akışları: kayıt ve oturum açma.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase auth kullanım durumunu kurar.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register kullanıcı oluşturur: parolayı bcrypt ile hash'ler ve kaydeder.
// Kullanıcı adı zaten varsa domain.ErrDuplicate döner.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleIzleyici
	}
	if role != entity.RoleAdmin && role != entity.RoleDepocu && role != entity.RoleIzleyici {
		return nil, domain.Validationf("geçersiz rol: %s", role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login kullanıcı adı/parolayı doğrular, JWT üretir ve token + kullanıcı döner.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
