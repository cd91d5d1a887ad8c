package httpclient

import (
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// New devuelve un *http.Client con timeout acotado.
// Los SDKs de terceros (Resend) aceptan un client inyectado; así todos los
// llamados salientes comparten el mismo timeout en vez del default infinito.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// NewWithTransport permite inyectar un RoundTripper (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	c := New(timeout)
	if tr != nil {
		c.Transport = tr
	}
	return c
}
