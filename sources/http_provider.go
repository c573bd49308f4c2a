package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"electoral/internal/config"
)

// HTTPProvider implementación de Provider sobre las fuentes HTTP reales.
// Aplica límite de tasa saliente y reintentos con espera exponencial; el
// cacheo por TTL lo agrega el decorador de internal/infrastructure/cache.
type HTTPProvider struct {
	client  *http.Client
	limiter *rate.Limiter
	retry   RetryConfig

	csvURL     string
	apiJSONURL string
	xmlBaseURL string
}

// NewHTTPProvider crea el proveedor HTTP a partir de la configuración
func NewHTTPProvider(cfg *config.Config) *HTTPProvider {
	return &HTTPProvider{
		client:     &http.Client{Timeout: cfg.FetchTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.FetchRateLimit), 1),
		retry:      DefaultRetryConfig(),
		csvURL:     cfg.CSVURL,
		apiJSONURL: cfg.APIJSONURL,
		xmlBaseURL: cfg.XMLBaseURL,
	}
}

// Padron descarga y parsea el padrón CSV completo
func (p *HTTPProvider) Padron(ctx context.Context) (*PadronSnapshot, error) {
	var snapshot *PadronSnapshot

	err := WithRetry(ctx, p.retry, func() error {
		body, err := p.fetch(ctx, p.csvURL)
		if err != nil {
			return err
		}
		defer body.Close()

		snapshot, err = ParsePadronCSV(body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("descargando padrón: %w", err)
	}

	return snapshot, nil
}

// Metadatos descarga y parsea el feed JSON de metadatos
func (p *HTTPProvider) Metadatos(ctx context.Context) (*MetadatosSnapshot, error) {
	var snapshot *MetadatosSnapshot

	err := WithRetry(ctx, p.retry, func() error {
		body, err := p.fetch(ctx, p.apiJSONURL)
		if err != nil {
			return err
		}
		defer body.Close()

		snapshot, err = ParseMetadatosJSON(body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("descargando metadatos: %w", err)
	}

	return snapshot, nil
}

// Escrutinio descarga y parsea el XML de escrutinio de un distrito
func (p *HTTPProvider) Escrutinio(ctx context.Context, distrito string) (*EscrutinioSnapshot, error) {
	url := fmt.Sprintf(p.xmlBaseURL, distrito)

	var snapshot *EscrutinioSnapshot
	err := WithRetry(ctx, p.retry, func() error {
		body, err := p.fetch(ctx, url)
		if err != nil {
			return err
		}
		defer body.Close()

		snapshot, err = ParseEscrutinioXML(body, distrito)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("descargando escrutinio de %s: %w", distrito, err)
	}

	return snapshot, nil
}

// fetch hace un GET respetando el límite de tasa y valida el estado HTTP
func (p *HTTPProvider) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, ErrSinDatos)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s devolvió %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
