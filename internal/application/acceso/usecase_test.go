package acceso_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electrovision-web/internal/application/acceso"
	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

type gatewayFalso struct {
	funcionario *entity.Funcionario
	err         error
	llamadas    int
}

func (g *gatewayFalso) Login(ctx context.Context, chave string) (*entity.Funcionario, error) {
	g.llamadas++
	return g.funcionario, g.err
}

func TestEntrar_ClaveVacia_NoTocaElBackend(t *testing.T) {
	gw := &gatewayFalso{}
	uc := acceso.NewUseCase(gw)

	for _, chave := range []string{"", "   "} {
		f, err := uc.Entrar(context.Background(), chave)
		assert.Nil(t, f)
		assert.ErrorIs(t, err, domain.ErrValidacion, "clave %q", chave)
	}
	assert.Zero(t, gw.llamadas)
}

func TestEntrar_ClaveValida_DevuelveLaIdentidad(t *testing.T) {
	gw := &gatewayFalso{funcionario: &entity.Funcionario{ID: 7, Nombre: "Ana"}}
	uc := acceso.NewUseCase(gw)

	f, err := uc.Entrar(context.Background(), "abc123")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, 7, f.ID)
	assert.Equal(t, 1, gw.llamadas)
}

func TestEntrar_ErrorDelBackend_SePropaga(t *testing.T) {
	gw := &gatewayFalso{err: &domain.ErrorBackend{Codigo: 401, Mensaje: "Clave de acceso incorrecta"}}
	uc := acceso.NewUseCase(gw)

	f, err := uc.Entrar(context.Background(), "mala")
	assert.Nil(t, f)
	assert.EqualError(t, err, "Clave de acceso incorrecta")
}
