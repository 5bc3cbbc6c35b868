package middleware

import (
	"net/http"
	"sync"
	"time"

	"essen/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana is one client IP's counter inside the current window.
type ventana struct {
	mu     sync.Mutex
	n      int
	cierre time.Time
}

// limitador counts requests per IP over a fixed window. IPs that stop sending
// are dropped by the purge ticker so the map does not grow forever.
type limitador struct {
	mu      sync.Mutex
	porIP   map[string]*ventana
	limite  int
	periodo time.Duration
	mensaje string
}

func newLimitador(limite int, periodo time.Duration, mensaje string) *limitador {
	l := &limitador{
		porIP:   make(map[string]*ventana),
		limite:  limite,
		periodo: periodo,
		mensaje: mensaje,
	}
	go l.purgar()
	return l
}

func (l *limitador) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		v, ok := l.porIP[ip]
		if !ok {
			v = &ventana{}
			l.porIP[ip] = v
		}
		l.mu.Unlock()

		v.mu.Lock()
		ahora := time.Now()
		if ahora.After(v.cierre) {
			v.n = 0
			v.cierre = ahora.Add(l.periodo)
		}
		v.n++
		excedido := v.n > l.limite
		cierre := v.cierre
		v.mu.Unlock()

		if excedido {
			c.Header("Retry-After", cierre.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

func (l *limitador) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ahora := time.Now()

		l.mu.Lock()
		purgadas := 0
		for ip, v := range l.porIP {
			v.mu.Lock()
			if ahora.After(v.cierre) {
				delete(l.porIP, ip)
				purgadas++
			}
			v.mu.Unlock()
		}
		restantes := len(l.porIP)
		l.mu.Unlock()

		if purgadas > 0 {
			log.Debug().
				Int("purged", purgadas).
				Int("remaining", restantes).
				Msg("rate limiter entries purged")
		}
	}
}

var loginLimitador = newLimitador(20, time.Minute,
	"Demasiados intentos de login. Intente en 1 minuto.")

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return loginLimitador.handler()
}

// RateLimiter returns a per-IP request limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimitador(limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
