package supabasestore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"testing"
	"time"
)

// transporteInestable falla las primeras llamadas con el error dado y luego
// responde 200.
type transporteInestable struct {
	fallas   int
	err      error
	intentos int
	cuerpos  []string
}

func (t *transporteInestable) RoundTrip(req *http.Request) (*http.Response, error) {
	t.intentos++
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		req.Body.Close()
		t.cuerpos = append(t.cuerpos, string(raw))
	}
	if t.intentos <= t.fallas {
		return nil, t.err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("[]")),
		Header:     http.Header{},
		Request:    req,
	}, nil
}

func nuevaPeticion(t *testing.T, body string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(http.MethodPost, "http://store.local/rest/v1/carrera", reader)
	if err != nil {
		t.Fatalf("armar petición: %v", err)
	}
	return req
}

func TestRetryReintentaErroresDeRed(t *testing.T) {
	base := &transporteInestable{
		fallas: 2,
		err:    &net.OpError{Op: "read", Err: syscall.ECONNRESET},
	}
	rt := &retryTransport{
		base:   base,
		policy: RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2},
	}

	resp, err := rt.RoundTrip(nuevaPeticion(t, ""))
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	resp.Body.Close()
	if base.intentos != 3 {
		t.Errorf("intentos = %d, quiero 3", base.intentos)
	}
}

func TestRetryAgotaLosIntentos(t *testing.T) {
	base := &transporteInestable{
		fallas: 10,
		err:    &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
	}
	rt := &retryTransport{
		base:   base,
		policy: RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2},
	}

	_, err := rt.RoundTrip(nuevaPeticion(t, ""))
	if err == nil {
		t.Fatal("quiero el último error tras agotar los intentos")
	}
	if base.intentos != 3 {
		t.Errorf("intentos = %d, quiero 3", base.intentos)
	}
	if !errors.Is(err, syscall.ECONNREFUSED) {
		t.Errorf("err = %v, quiero ECONNREFUSED", err)
	}
}

func TestRetryNoReintentaErroresNoTransitorios(t *testing.T) {
	base := &transporteInestable{
		fallas: 10,
		err:    errors.New("certificado inválido"),
	}
	rt := &retryTransport{
		base:   base,
		policy: RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2},
	}

	if _, err := rt.RoundTrip(nuevaPeticion(t, "")); err == nil {
		t.Fatal("quiero el error original")
	}
	if base.intentos != 1 {
		t.Errorf("intentos = %d, quiero 1 (sin reintentos)", base.intentos)
	}
}

func TestRetryNoReintentaContextoCancelado(t *testing.T) {
	base := &transporteInestable{fallas: 10, err: context.Canceled}
	rt := &retryTransport{
		base:   base,
		policy: RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2},
	}

	if _, err := rt.RoundTrip(nuevaPeticion(t, "")); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, quiero context.Canceled", err)
	}
	if base.intentos != 1 {
		t.Errorf("intentos = %d, quiero 1", base.intentos)
	}
}

func TestRetryRepiteElCuerpoEnCadaIntento(t *testing.T) {
	base := &transporteInestable{
		fallas: 1,
		err:    &net.OpError{Op: "write", Err: syscall.ECONNRESET},
	}
	rt := &retryTransport{
		base:   base,
		policy: RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond, Multiplier: 2},
	}

	resp, err := rt.RoundTrip(nuevaPeticion(t, `{"descripcion":"x"}`))
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	resp.Body.Close()
	if len(base.cuerpos) != 2 {
		t.Fatalf("cuerpos capturados = %d, quiero 2", len(base.cuerpos))
	}
	if base.cuerpos[0] != base.cuerpos[1] {
		t.Errorf("el reintento no repitió el mismo cuerpo: %q vs %q", base.cuerpos[0], base.cuerpos[1])
	}
}

func TestEsErrorDeRed(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		quiero bool
	}{
		{"conexión reiniciada", &net.OpError{Err: syscall.ECONNRESET}, true},
		{"conexión rechazada", syscall.ECONNREFUSED, true},
		{"EOF inesperado", io.ErrUnexpectedEOF, true},
		{"contexto cancelado", context.Canceled, false},
		{"deadline vencido", context.DeadlineExceeded, false},
		{"error genérico", errors.New("otra cosa"), false},
	}
	for _, caso := range casos {
		if got := esErrorDeRed(caso.err); got != caso.quiero {
			t.Errorf("%s: esErrorDeRed = %v, quiero %v", caso.nombre, got, caso.quiero)
		}
	}
}
