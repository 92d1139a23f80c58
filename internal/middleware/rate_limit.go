package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientesOciosos é o tempo sem requisições após o qual o limitador de um IP é descartado.
const clientesOciosos = 10 * time.Minute

type visitante struct {
	limiter *rate.Limiter
	visto   time.Time
}

// RateLimiter limita as requisições por IP com um token bucket em memória.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu         sync.Mutex
	visitantes map[string]*visitante
	limpeza    time.Time
	agora      func() time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:        rate.Limit(rps),
		burst:      burst,
		visitantes: make(map[string]*visitante),
		agora:      time.Now,
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.agora()
	if now.Sub(rl.limpeza) > clientesOciosos {
		for k, v := range rl.visitantes {
			if now.Sub(v.visto) > clientesOciosos {
				delete(rl.visitantes, k)
			}
		}
		rl.limpeza = now
	}

	v, ok := rl.visitantes[ip]
	if !ok {
		v = &visitante{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitantes[ip] = v
	}
	v.visto = now
	return v.limiter.AllowN(now, 1)
}

// Middleware recusa com 429 quando o IP passa do limite. rps <= 0 desliga o limite.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rps <= 0 || rl.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Muitas requisições. Tente novamente em instantes.",
		})
	}
}
