package sources

import (
	"context"
	"time"
)

const (
	// DefaultRetryAttempts cantidad de intentos por defecto
	DefaultRetryAttempts = 3
	// DefaultRetryDelay espera inicial entre intentos
	DefaultRetryDelay = 200 * time.Millisecond
	// MaxRetryDelay espera máxima entre intentos
	MaxRetryDelay = 2 * time.Second
)

// RetryConfig configuración de reintentos para las descargas
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64 // multiplicador de la espera exponencial
}

// DefaultRetryConfig configuración de reintentos por defecto
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultRetryAttempts,
		InitialDelay: DefaultRetryDelay,
		MaxDelay:     MaxRetryDelay,
		Multiplier:   2.0,
	}
}

// WithRetry ejecuta fn reintentando con espera exponencial. Respeta la
// cancelación del contexto entre intentos y devuelve el último error.
func WithRetry(ctx context.Context, config RetryConfig, fn func() error) error {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultRetryAttempts
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = DefaultRetryDelay
	}
	if config.Multiplier <= 1 {
		config.Multiplier = 2.0
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == config.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * config.Multiplier)
		if config.MaxDelay > 0 && delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return lastErr
}
