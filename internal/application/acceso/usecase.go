// Package acceso maneja el inicio de sesión contra el backend.
package acceso

import (
	"context"
	"strings"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Gateway operaciones del backend que necesita este caso de uso.
type Gateway interface {
	Login(ctx context.Context, chave string) (*entity.Funcionario, error)
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	gw Gateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw Gateway) *UseCase {
	return &UseCase{gw: gw}
}

// Entrar valida la clave localmente y delega la autenticación en el backend.
// La identidad devuelta ya viene normalizada por el gateway.
func (uc *UseCase) Entrar(ctx context.Context, chave string) (*entity.Funcionario, error) {
	if strings.TrimSpace(chave) == "" {
		return nil, &domain.ErrorValidacion{Mensaje: "Por favor ingresa tu clave de acceso"}
	}
	return uc.gw.Login(ctx, chave)
}
