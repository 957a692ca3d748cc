package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/routes"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
	"github.com/genexamen/genexamen-backend/store/gormstore"
	"github.com/genexamen/genexamen-backend/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	if err := gormstore.AutoMigrate(db); err != nil {
		t.Fatalf("migrar esquema: %v", err)
	}
	s := gormstore.New(db)
	svcs := services.New(s)

	media := utils.NewMediaStorage("http://storage.local", "clave-de-prueba")
	r := gin.New()
	r = routes.SetupRouter(r, s, svcs, media, func(ctx context.Context) error { return nil })
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("serializar cuerpo: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decodificar respuesta %q: %v", w.Body.String(), err)
	}
	return out
}

func TestPingYHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/ping", nil); w.Code != http.StatusOK {
		t.Errorf("/ping = %d, quiero 200", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("/health = %d, quiero 200", w.Code)
	}
}

func TestCarreraCRUDPorHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/carreras", gin.H{"descripcion": "Arquitectura"})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/carreras = %d: %s", w.Code, w.Body.String())
	}
	var creada models.Carrera
	if err := json.Unmarshal(decodeBody(t, w)["carrera"], &creada); err != nil {
		t.Fatalf("decodificar carrera: %v", err)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/carreras/1", nil); w.Code != http.StatusOK {
		t.Errorf("GET = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, "/api/carreras/1", gin.H{"descripcion": "Arquitectura y Urbanismo"}); w.Code != http.StatusOK {
		t.Errorf("PUT = %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/carreras/1", nil); w.Code != http.StatusOK {
		t.Errorf("DELETE = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/carreras/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET tras delete = %d, quiero 404", w.Code)
	}
}

func TestIDInvalidoResponde400(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := doJSON(t, r, http.MethodGet, "/api/unidades/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("id no numérico = %d, quiero 400", w.Code)
	}
}

func TestFlujoCompletoDePartida(t *testing.T) {
	r, s := newTestRouter(t)
	ctx := context.Background()

	asignatura, err := s.Asignaturas.Create(ctx, &models.Asignatura{Descripcion: "Redes"})
	if err != nil {
		t.Fatalf("crear asignatura: %v", err)
	}

	// Alta combinada: 2 unidades de 2 preguntas.
	w := doJSON(t, r, http.MethodPost, "/api/partidas/completa", gin.H{
		"descripcion":          "Examen de Redes",
		"asignatura_id":        asignatura.AsignaturaID,
		"titulo_programa":      "Programa de Redes",
		"num_unidades":         2,
		"preguntas_por_unidad": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/partidas/completa = %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)

	var unidades []models.Unidad
	if err := json.Unmarshal(body["unidades"], &unidades); err != nil {
		t.Fatalf("decodificar unidades: %v", err)
	}
	if len(unidades) != 2 {
		t.Fatalf("unidades = %d, quiero 2", len(unidades))
	}

	// Las preguntas quedaron numeradas 1..4 a través de las dos unidades.
	var programa models.ProgramaAnalitico
	if err := json.Unmarshal(body["programa"], &programa); err != nil {
		t.Fatalf("decodificar programa: %v", err)
	}
	total := 0
	ultimo := 0
	for _, unidad := range unidades {
		unidadID := unidad.UnidadID
		preguntas, err := s.Preguntas.List(ctx, &unidadID, 100, 0)
		if err != nil {
			t.Fatalf("listar preguntas: %v", err)
		}
		for _, p := range preguntas {
			total++
			if p.Numero != ultimo+1 {
				t.Errorf("numeración no contigua: %d después de %d", p.Numero, ultimo)
			}
			ultimo = p.Numero
		}
	}
	if total != 4 {
		t.Errorf("preguntas totales = %d, quiero 4", total)
	}

	// Generar más preguntas en la unidad 2 con cantidad explícita.
	w = doJSON(t, r, http.MethodPost, "/api/unidades/2/generar-preguntas", gin.H{"cantidad": 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("generar-preguntas = %d: %s", w.Code, w.Body.String())
	}

	// Renumerar deja 1..N global.
	w = doJSON(t, r, http.MethodPost, "/api/programas/1/renumerar", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("renumerar = %d: %s", w.Code, w.Body.String())
	}
	var procesadas int
	if err := json.Unmarshal(decodeBody(t, w)["preguntas_procesadas"], &procesadas); err != nil {
		t.Fatalf("decodificar preguntas_procesadas: %v", err)
	}
	if procesadas != 7 {
		t.Errorf("preguntas_procesadas = %d, quiero 7", procesadas)
	}
}

func TestGenerarPreguntasUnidadInexistente(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/unidades/99/generar-preguntas", gin.H{"cantidad": 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("unidad inexistente = %d, quiero 404", w.Code)
	}
}

func TestBusquedaDeAsignaturas(t *testing.T) {
	r, s := newTestRouter(t)
	ctx := context.Background()

	for _, d := range []string{"Química Orgánica", "Química Inorgánica", "Botánica"} {
		if _, err := s.Asignaturas.Create(ctx, &models.Asignatura{Descripcion: d}); err != nil {
			t.Fatalf("crear asignatura: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/asignaturas?buscar=qu%C3%ADmica", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/asignaturas?buscar= %d: %s", w.Code, w.Body.String())
	}
	var asignaturas []models.Asignatura
	if err := json.Unmarshal(decodeBody(t, w)["asignaturas"], &asignaturas); err != nil {
		t.Fatalf("decodificar asignaturas: %v", err)
	}
	if len(asignaturas) != 2 {
		t.Errorf("coincidencias = %d, quiero 2", len(asignaturas))
	}
}
