package http_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electrovision-web/internal/application/acceso"
	"github.com/jhoicas/electrovision-web/internal/application/catalogo"
	"github.com/jhoicas/electrovision-web/internal/application/estoque"
	"github.com/jhoicas/electrovision-web/internal/application/panel"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
	"github.com/jhoicas/electrovision-web/internal/infrastructure/electrovision"
	webhttp "github.com/jhoicas/electrovision-web/internal/interfaces/http"
	"github.com/jhoicas/electrovision-web/internal/session"
	"github.com/jhoicas/electrovision-web/pkg/logger"
)

const prefijoAPI = "/v1/electrovision"

func logSilencioso() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// appPrueba monta la aplicación completa contra un backend de prueba.
func appPrueba(t *testing.T, backendURL string) (*fiber.App, *session.Store) {
	t.Helper()

	log := logSilencioso()
	cliente := electrovision.New(backendURL, prefijoAPI, log)
	render, err := webhttp.NewRenderer()
	require.NoError(t, err)
	sesiones := session.NewStore("secreto-de-pruebas", "electrovision-test", 60)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	webhttp.Router(app, webhttp.RouterDeps{
		AccesoUC:      acceso.NewUseCase(cliente),
		CatalogoUC:    catalogo.NewUseCase(cliente),
		EstoqueUC:     estoque.NewUseCase(cliente),
		PanelUC:       panel.NewUseCase(cliente),
		Sesiones:      sesiones,
		Render:        render,
		Log:           log,
		SesionMinutos: 60,
	})
	return app, sesiones
}

// backendMudo responde status:true vacío a todo; sirve cuando la prueba solo
// necesita que el backend exista.
func backendMudo(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func cookieSesion(t *testing.T, sesiones *session.Store) *nethttp.Cookie {
	t.Helper()
	valor, err := sesiones.Emitir(entity.Funcionario{ID: 7, Nombre: "Ana", Rol: "bodeguera"})
	require.NoError(t, err)
	return &nethttp.Cookie{Name: session.CookieName, Value: valor}
}

func formulario(valores url.Values) (io.Reader, string) {
	return strings.NewReader(valores.Encode()), fiber.MIMEApplicationForm
}

func buscarCookie(resp *nethttp.Response, nombre string) *nethttp.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == nombre {
			return c
		}
	}
	return nil
}

func leerCuerpo(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// decodificarFlash abre la cookie de mensaje transitorio dejada por una acción.
func decodificarFlash(t *testing.T, resp *nethttp.Response) webhttp.Flash {
	t.Helper()
	cookie := buscarCookie(resp, "electrovision_flash")
	require.NotNil(t, cookie, "la acción debe dejar un mensaje transitorio")
	b, err := base64.URLEncoding.DecodeString(cookie.Value)
	require.NoError(t, err)
	var f webhttp.Flash
	require.NoError(t, json.Unmarshal(b, &f))
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia de navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestRaiz_SinSesion_RedirigeALogin(t *testing.T) {
	app, _ := appPrueba(t, backendMudo(t).URL)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestRaiz_ConSesion_RedirigeAlDashboard(t *testing.T) {
	app, sesiones := appPrueba(t, backendMudo(t).URL)

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
}

func TestRutasProtegidas_SinSesion_RedirigenALogin(t *testing.T) {
	app, _ := appPrueba(t, backendMudo(t).URL)

	for _, ruta := range []string{"/dashboard", "/productos", "/productos/nuevo", "/estoque"} {
		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, ruta, nil), -1)
		require.NoError(t, err, ruta)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, ruta)
		assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation), ruta)
	}
}

func TestLogin_ConSesion_RedirigeAlDashboard(t *testing.T) {
	app, sesiones := appPrueba(t, backendMudo(t).URL)

	req := httptest.NewRequest(nethttp.MethodGet, "/login", nil)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
}

func TestCookieCorrupta_SeLimpiaYVuelveALogin(t *testing.T) {
	app, _ := appPrueba(t, backendMudo(t).URL)

	req := httptest.NewRequest(nethttp.MethodGet, "/dashboard", nil)
	req.AddCookie(&nethttp.Cookie{Name: session.CookieName, Value: "no.es.un-token"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	limpia := buscarCookie(resp, session.CookieName)
	require.NotNil(t, limpia, "la cookie corrupta debe borrarse")
	assert.Empty(t, limpia.Value)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicio de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_DejaCookieYVaAlDashboard(t *testing.T) {
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, nethttp.MethodPost, r.Method)
		require.Equal(t, prefijoAPI+"/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"funcionario":{"id_funcionario":7,"nome":"Ana"}}`))
	}))
	t.Cleanup(backend.Close)

	app, sesiones := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{"chave": {"abc123"}})
	req := httptest.NewRequest(nethttp.MethodPost, "/login", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))

	cookie := buscarCookie(resp, session.CookieName)
	require.NotNil(t, cookie, "el login exitoso debe dejar la cookie de sesión")
	f, err := sesiones.Restaurar(cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "Ana", f.Nombre)
}

func TestLogin_ClaveIncorrecta_MuestraElMensajeDelBackend(t *testing.T) {
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":false,"message":"Clave de acceso incorrecta"}`))
	}))
	t.Cleanup(backend.Close)

	app, _ := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{"chave": {"mala"}})
	req := httptest.NewRequest(nethttp.MethodPost, "/login", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "el error se muestra en la misma página")

	html := leerCuerpo(t, resp)
	assert.Contains(t, html, "Clave de acceso incorrecta")
	assert.Contains(t, html, `value="mala"`, "lo tecleado se conserva")
	assert.Nil(t, buscarCookie(resp, session.CookieName))
}

func TestLogin_ClaveVacia_NoLlamaAlBackend(t *testing.T) {
	llamadas := 0
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		llamadas++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true}`))
	}))
	t.Cleanup(backend.Close)

	app, _ := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{"chave": {"   "}})
	req := httptest.NewRequest(nethttp.MethodPost, "/login", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, leerCuerpo(t, resp), "Por favor ingresa tu clave de acceso")
	assert.Zero(t, llamadas)
}

func TestLogout_BorraLaSesion(t *testing.T) {
	app, sesiones := appPrueba(t, backendMudo(t).URL)

	req := httptest.NewRequest(nethttp.MethodPost, "/logout", nil)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	limpia := buscarCookie(resp, session.CookieName)
	require.NotNil(t, limpia)
	assert.Empty(t, limpia.Value)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas contra el backend
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_BackendCaido_MuestraErrorDeConexion(t *testing.T) {
	caido := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	caido.Close()

	app, sesiones := appPrueba(t, caido.URL)

	req := httptest.NewRequest(nethttp.MethodGet, "/productos", nil)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "el fallo de red no tumba la vista")
	assert.Contains(t, leerCuerpo(t, resp), "error de conexión con el servidor")
}

func TestDashboard_MuestraLosMovimientosRecientes(t *testing.T) {
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, prefijoAPI+"/movimentacoes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"movimentacoes":[
			{"id":1,"data":"2026-08-30","resumo":"ENTRADA 5 Tablet","funcionario_nome":"Luis"}
		]}`))
	}))
	t.Cleanup(backend.Close)

	app, sesiones := appPrueba(t, backend.URL)

	req := httptest.NewRequest(nethttp.MethodGet, "/dashboard", nil)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	html := leerCuerpo(t, resp)
	assert.Contains(t, html, "Ana", "la cabecera saluda al empleado autenticado")
	assert.Contains(t, html, "ENTRADA 5 Tablet")
	assert.Contains(t, html, "30/08/2026")
}

func TestDashboard_BackendCaido_RindeVacioSinError(t *testing.T) {
	caido := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	caido.Close()

	app, sesiones := appPrueba(t, caido.URL)

	req := httptest.NewRequest(nethttp.MethodGet, "/dashboard", nil)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "el dashboard degrada a lista vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste rápido desde el catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAjuste_SalidaConStockCero_SinLlamadaAlBackend(t *testing.T) {
	movimientos := 0
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == prefijoAPI+"/movimentacao" {
			movimientos++
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true}`))
	}))
	t.Cleanup(backend.Close)

	app, sesiones := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{
		"tipo":     {"saida"},
		"cantidad": {"0"},
		"nombre":   {"Widget"},
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/productos/3/ajuste", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/productos", resp.Header.Get(fiber.HeaderLocation))
	assert.Zero(t, movimientos, "la salida con stock cero se corta sin viaje al backend")
	assert.Equal(t, "Stock insuficiente", decodificarFlash(t, resp).Error)
}

func TestAjuste_Entrada_RegistraYDejaElFlash(t *testing.T) {
	var recibido map[string]any
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == prefijoAPI+"/movimentacao" {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		}
		_, _ = w.Write([]byte(`{"status":true}`))
	}))
	t.Cleanup(backend.Close)

	app, sesiones := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{
		"tipo":     {"entrada"},
		"cantidad": {"2"},
		"nombre":   {"Widget"},
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/productos/3/ajuste", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "+1 Widget", decodificarFlash(t, resp).Exito)

	require.NotNil(t, recibido)
	assert.EqualValues(t, 3, recibido["id_produto"])
	assert.EqualValues(t, 7, recibido["id_funcionario"])
	assert.EqualValues(t, 1, recibido["quantidade"], "el ajuste mueve una unidad")
	assert.Equal(t, "entrada", recibido["tipo"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestEstoque_MovimientoValido_RedirigeConservandoLaFecha(t *testing.T) {
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == prefijoAPI+"/movimentacao" {
			_, _ = w.Write([]byte(`{"status":true,"alerta_estoque":{"message":"Low stock","produto":"Tablet","quantidade_atual":2,"status":"STOCK BAJO"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":true,"produtos":[]}`))
	}))
	t.Cleanup(backend.Close)

	app, sesiones := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{
		"producto_id": {"3"},
		"tipo":        {"saida"},
		"cantidad":    {"2"},
		"fecha":       {"2026-08-30"},
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/estoque/movimientos", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/estoque?fecha=2026-08-30", resp.Header.Get(fiber.HeaderLocation))

	flash := decodificarFlash(t, resp)
	assert.Equal(t, "¡Movimiento de salida registrado con éxito!", flash.Exito)
	require.NotNil(t, flash.Alerta)
	assert.Equal(t, "Tablet", flash.Alerta.Producto)
}

func TestEstoque_FormularioInvalido_VuelveConElError(t *testing.T) {
	backend := backendMudo(t)
	app, sesiones := appPrueba(t, backend.URL)

	cuerpo, tipo := formulario(url.Values{
		"producto_id": {"3"},
		"tipo":        {"saida"},
		"cantidad":    {"-2"},
		"fecha":       {"2026-08-30"},
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/estoque/movimientos", cuerpo)
	req.Header.Set(fiber.HeaderContentType, tipo)
	req.AddCookie(cookieSesion(t, sesiones))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, leerCuerpo(t, resp), "La cantidad debe ser un número positivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tema
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarTema_AlternaLaCookie(t *testing.T) {
	app, _ := appPrueba(t, backendMudo(t).URL)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodPost, "/tema", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	tema := buscarCookie(resp, "electrovision_tema")
	require.NotNil(t, tema)
	assert.Equal(t, "red", tema.Value, "desde el verde por defecto se pasa a rojo")

	req := httptest.NewRequest(nethttp.MethodPost, "/tema", nil)
	req.AddCookie(&nethttp.Cookie{Name: "electrovision_tema", Value: "red"})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	tema = buscarCookie(resp, "electrovision_tema")
	require.NotNil(t, tema)
	assert.Equal(t, "green", tema.Value)
}
