package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"electoral/internal/config"
	"electoral/sources"
)

// proveedorContado Provider falso que cuenta las llamadas reales
type proveedorContado struct {
	padronLlamadas     int
	metadatosLlamadas  int
	escrutinioLlamadas map[string]int
	fallar             bool
}

func nuevoProveedorContado() *proveedorContado {
	return &proveedorContado{escrutinioLlamadas: make(map[string]int)}
}

func (p *proveedorContado) Padron(ctx context.Context) (*sources.PadronSnapshot, error) {
	p.padronLlamadas++
	if p.fallar {
		return nil, errors.New("fuente caída")
	}
	return &sources.PadronSnapshot{PorDistrito: map[string][]sources.CandidatoPadron{}}, nil
}

func (p *proveedorContado) Metadatos(ctx context.Context) (*sources.MetadatosSnapshot, error) {
	p.metadatosLlamadas++
	if p.fallar {
		return nil, errors.New("fuente caída")
	}
	return &sources.MetadatosSnapshot{Distritos: map[string]sources.DistritoFeed{}}, nil
}

func (p *proveedorContado) Escrutinio(ctx context.Context, distrito string) (*sources.EscrutinioSnapshot, error) {
	p.escrutinioLlamadas[distrito]++
	if p.fallar {
		return nil, errors.New("fuente caída")
	}
	return &sources.EscrutinioSnapshot{Distrito: distrito, Votos: map[string]int{}}, nil
}

func configTTL() *config.Config {
	return &config.Config{
		CSVCacheTTL: 10 * time.Minute,
		APICacheTTL: time.Minute,
		XMLCacheTTL: time.Minute,
	}
}

// TestProviderConCache_Hit la segunda lectura dentro del TTL no descarga
func TestProviderConCache_Hit(t *testing.T) {
	inner := nuevoProveedorContado()
	cache := NewProviderConCache(inner, configTTL())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cache.Padron(ctx); err != nil {
			t.Fatalf("Padron() error = %v", err)
		}
	}
	if inner.padronLlamadas != 1 {
		t.Errorf("padronLlamadas = %d, se esperaba 1", inner.padronLlamadas)
	}

	if _, err := cache.Escrutinio(ctx, "6001"); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Escrutinio(ctx, "6001"); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Escrutinio(ctx, "6002"); err != nil {
		t.Fatal(err)
	}
	if inner.escrutinioLlamadas["6001"] != 1 || inner.escrutinioLlamadas["6002"] != 1 {
		t.Errorf("escrutinioLlamadas = %v", inner.escrutinioLlamadas)
	}
}

// TestProviderConCache_Expira pasado el TTL se vuelve a descargar
func TestProviderConCache_Expira(t *testing.T) {
	inner := nuevoProveedorContado()
	cache := NewProviderConCache(inner, configTTL())

	momento := time.Now()
	cache.ahora = func() time.Time { return momento }

	ctx := context.Background()
	if _, err := cache.Metadatos(ctx); err != nil {
		t.Fatal(err)
	}

	// avanzamos el reloj más allá del TTL
	momento = momento.Add(2 * time.Minute)
	if _, err := cache.Metadatos(ctx); err != nil {
		t.Fatal(err)
	}

	if inner.metadatosLlamadas != 2 {
		t.Errorf("metadatosLlamadas = %d, se esperaban 2", inner.metadatosLlamadas)
	}
}

// TestProviderConCache_NoCacheaErrores una descarga fallida no queda cacheada
func TestProviderConCache_NoCacheaErrores(t *testing.T) {
	inner := nuevoProveedorContado()
	inner.fallar = true
	cache := NewProviderConCache(inner, configTTL())
	ctx := context.Background()

	if _, err := cache.Padron(ctx); err == nil {
		t.Fatal("se esperaba error")
	}

	inner.fallar = false
	if _, err := cache.Padron(ctx); err != nil {
		t.Fatalf("Padron() error = %v tras recuperarse la fuente", err)
	}
	if inner.padronLlamadas != 2 {
		t.Errorf("padronLlamadas = %d, se esperaban 2", inner.padronLlamadas)
	}
}

// TestProviderConCache_Invalidate limpiar el caché fuerza nueva descarga
func TestProviderConCache_Invalidate(t *testing.T) {
	inner := nuevoProveedorContado()
	cache := NewProviderConCache(inner, configTTL())
	ctx := context.Background()

	if _, err := cache.Padron(ctx); err != nil {
		t.Fatal(err)
	}
	cache.Invalidate()
	if _, err := cache.Padron(ctx); err != nil {
		t.Fatal(err)
	}

	if inner.padronLlamadas != 2 {
		t.Errorf("padronLlamadas = %d, se esperaban 2", inner.padronLlamadas)
	}
}
