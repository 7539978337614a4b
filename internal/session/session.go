// Package session codifica la sesión del empleado autenticado en un token
// firmado que viaja en una cookie del navegador. Es el único estado durable
// del lado cliente: no hay revalidación contra el backend, una sesión
// restaurada se confía hasta el logout.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// CookieName nombre de la cookie de sesión en el navegador.
const CookieName = "electrovision_sesion"

// Claims incluye los claims estándar JWT más la identidad canónica del
// empleado (ya normalizada en la frontera del gateway).
type Claims struct {
	jwt.RegisteredClaims
	FuncionarioID int    `json:"funcionario_id"`
	Nombre        string `json:"nombre"`
	Rol           string `json:"rol,omitempty"`
}

// Store emite y restaura sesiones firmadas.
type Store struct {
	secret     string
	issuer     string
	expiracion time.Duration
}

// NewStore construye el store de sesiones.
func NewStore(secret, issuer string, expMinutes int) *Store {
	return &Store{
		secret:     secret,
		issuer:     issuer,
		expiracion: time.Duration(expMinutes) * time.Minute,
	}
}

// Emitir genera el valor de cookie para un empleado autenticado.
func (s *Store) Emitir(f entity.Funcionario) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   fmt.Sprintf("%d", f.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiracion)),
		},
		FuncionarioID: f.ID,
		Nombre:        f.Nombre,
		Rol:           f.Rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Restaurar reconstruye la sesión desde el valor crudo de la cookie.
// Valor ausente o el literal "undefined" significa "sin sesión" y no es un
// error. Un valor presente pero corrupto devuelve ErrSesionInvalida: quien
// llama debe borrar la cookie y continuar como anónimo, nunca fallar.
func (s *Store) Restaurar(valor string) (*entity.Funcionario, error) {
	if valor == "" || valor == "undefined" {
		return nil, nil
	}
	if s.secret == "" {
		return nil, domain.ErrSesionInvalida
	}
	token, err := jwt.ParseWithClaims(valor, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, domain.ErrSesionInvalida
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrSesionInvalida
	}
	return &entity.Funcionario{
		ID:     claims.FuncionarioID,
		Nombre: claims.Nombre,
		Rol:    claims.Rol,
	}, nil
}
