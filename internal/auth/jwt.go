package auth

import (
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTCustomClaims struct {
	UsuarioID uint   `json:"usuario_id"`
	Email     string `json:"email"`
	Cargo     string `json:"cargo"`
	SessaoID  string `json:"sessao_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, usuario *models.Usuario, cargo string) (string, error) {
	claims := &JWTCustomClaims{
		UsuarioID: usuario.ID,
		Email:     usuario.Email,
		Cargo:     cargo,
		SessaoID:  uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1 dia
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
