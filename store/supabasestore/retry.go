package supabasestore

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"
)

// RetryPolicy describe los reintentos ante fallas transitorias de red:
// cantidad máxima de intentos, demora base y multiplicador del backoff.
// Los errores que no son de red se propagan sin reintentar.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	// Retryable decide si un error de transporte amerita reintento.
	// Si es nil se usa esErrorDeRed.
	Retryable func(error) bool
}

// DefaultRetryPolicy: 3 intentos, 1s de base, duplicando la demora.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Multiplier:  2,
	}
}

func (p RetryPolicy) retryable(err error) bool {
	if p.Retryable != nil {
		return p.Retryable(err)
	}
	return esErrorDeRed(err)
}

// esErrorDeRed reconoce fallas de conexión, lectura y timeout. La
// cancelación del contexto nunca se reintenta.
func esErrorDeRed(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED)
}

// retryTransport envuelve el transporte HTTP con la política de reintentos.
type retryTransport struct {
	base   http.RoundTripper
	policy RetryPolicy
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	maxAttempts := t.policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := t.policy.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		r := req
		if attempt > 1 && req.Body != nil {
			if req.GetBody == nil {
				// el cuerpo no se puede repetir
				return nil, lastErr
			}
			body, err := req.GetBody()
			if err != nil {
				return nil, lastErr
			}
			r = req.Clone(req.Context())
			r.Body = body
		}

		resp, err := t.base.RoundTrip(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt >= maxAttempts || !t.policy.retryable(err) {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
		delay = time.Duration(float64(delay) * t.policy.Multiplier)
	}
	return nil, lastErr
}
