package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/domain/repository"
	"github.com/jhoicas/consigna-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. El core de inventario no hace
// ninguna verificación de permisos: solo recibe el actor opaco que sale del
// token emitido aquí.
type AuthUseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.ActionLogRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, logRepo repository.ActionLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, logRepo: logRepo, jwtCfg: jwtCfg}
}

// Login verifica login/password con bcrypt, emite el JWT y registra la
// entrada LOGIN en el log de acciones.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Login == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	logErr := uc.logRepo.Create(&entity.ActionLogEntry{
		ActorID:       user.ID,
		OccurredAt:    time.Now(),
		Kind:          entity.ActionLogin,
		Description:   fmt.Sprintf("Login exitoso: %s", user.Login),
		AffectedTable: "users",
		AffectedID:    user.ID,
	})
	if logErr != nil {
		return nil, logErr
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Login: user.Login,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}
