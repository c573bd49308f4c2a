// Package cache implementa el cacheo por TTL de las instantáneas de las
// fuentes electorales. Envuelve un sources.Provider sin tocar la lógica de
// cálculo: el core siempre ve instantáneas ya resueltas.
package cache

import (
	"context"
	"sync"
	"time"

	"electoral/internal/config"
	"electoral/sources"
)

// ProviderConCache decorador de sources.Provider con TTL por fuente.
// Seguro para lectores concurrentes; las instantáneas nunca se mutan.
type ProviderConCache struct {
	inner sources.Provider

	padronTTL     time.Duration
	metadatosTTL  time.Duration
	escrutinioTTL time.Duration

	mu               sync.RWMutex
	padron           *sources.PadronSnapshot
	padronExpiry     time.Time
	metadatos        *sources.MetadatosSnapshot
	metadatosExpiry  time.Time
	escrutinios      map[string]*sources.EscrutinioSnapshot
	escrutinioExpiry map[string]time.Time

	ahora func() time.Time // inyectable en pruebas
}

// NewProviderConCache crea el decorador con los TTL de la configuración
func NewProviderConCache(inner sources.Provider, cfg *config.Config) *ProviderConCache {
	return &ProviderConCache{
		inner:            inner,
		padronTTL:        cfg.CSVCacheTTL,
		metadatosTTL:     cfg.APICacheTTL,
		escrutinioTTL:    cfg.XMLCacheTTL,
		escrutinios:      make(map[string]*sources.EscrutinioSnapshot),
		escrutinioExpiry: make(map[string]time.Time),
		ahora:            time.Now,
	}
}

// Padron devuelve el padrón cacheado o lo descarga
func (c *ProviderConCache) Padron(ctx context.Context) (*sources.PadronSnapshot, error) {
	c.mu.RLock()
	if c.padron != nil && c.ahora().Before(c.padronExpiry) {
		snapshot := c.padron
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	snapshot, err := c.inner.Padron(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.padron = snapshot
	c.padronExpiry = c.ahora().Add(c.padronTTL)
	c.mu.Unlock()

	return snapshot, nil
}

// Metadatos devuelve los metadatos cacheados o los descarga
func (c *ProviderConCache) Metadatos(ctx context.Context) (*sources.MetadatosSnapshot, error) {
	c.mu.RLock()
	if c.metadatos != nil && c.ahora().Before(c.metadatosExpiry) {
		snapshot := c.metadatos
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	snapshot, err := c.inner.Metadatos(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.metadatos = snapshot
	c.metadatosExpiry = c.ahora().Add(c.metadatosTTL)
	c.mu.Unlock()

	return snapshot, nil
}

// Escrutinio devuelve el escrutinio cacheado de un distrito o lo descarga
func (c *ProviderConCache) Escrutinio(ctx context.Context, distrito string) (*sources.EscrutinioSnapshot, error) {
	c.mu.RLock()
	if snapshot, ok := c.escrutinios[distrito]; ok {
		if expiry, ok := c.escrutinioExpiry[distrito]; ok && c.ahora().Before(expiry) {
			c.mu.RUnlock()
			return snapshot, nil
		}
	}
	c.mu.RUnlock()

	snapshot, err := c.inner.Escrutinio(ctx, distrito)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.escrutinios[distrito] = snapshot
	c.escrutinioExpiry[distrito] = c.ahora().Add(c.escrutinioTTL)
	c.mu.Unlock()

	return snapshot, nil
}

// Invalidate limpia todo el caché. Lo usa el endpoint de limpieza de
// caches.
func (c *ProviderConCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.padron = nil
	c.metadatos = nil
	c.escrutinios = make(map[string]*sources.EscrutinioSnapshot)
	c.escrutinioExpiry = make(map[string]time.Time)
}
