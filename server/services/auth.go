package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrCredencialesInvalidas usuario o contraseña incorrectos
var ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")

// AuthService emite y firma los tokens JWT contra la tabla de usuarios de
// la configuración
type AuthService struct {
	usuarios   map[string]string
	secret     []byte
	expiracion time.Duration
	ahora      func() time.Time
}

// NewAuthService crea el servicio de autenticación
func NewAuthService(usuarios map[string]string, secret string, expiracion time.Duration) *AuthService {
	return &AuthService{
		usuarios:   usuarios,
		secret:     []byte(secret),
		expiracion: expiracion,
		ahora:      time.Now,
	}
}

// Login valida las credenciales y devuelve un token JWT firmado
func (s *AuthService) Login(usuario, password string) (string, error) {
	esperada, ok := s.usuarios[usuario]
	if !ok {
		return "", ErrCredencialesInvalidas
	}
	if subtle.ConstantTimeCompare([]byte(esperada), []byte(password)) != 1 {
		return "", ErrCredencialesInvalidas
	}

	ahora := s.ahora()
	claims := jwt.MapClaims{
		"sub": usuario,
		"iat": ahora.Unix(),
		"exp": ahora.Add(s.expiracion).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return firmado, nil
}
