package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config configuración del servidor
type Config struct {
	// Servidor
	Port string `json:"port"`

	// Autenticación
	JWTSecret       string        `json:"jwt_secret"`
	TokenExpiracion time.Duration `json:"token_expiracion"`

	// Fuentes de datos externas
	CSVURL      string `json:"csv_url"`
	APIJSONURL  string `json:"api_json_url"`
	XMLBaseURL  string `json:"xml_base_url"`  // patrón con %s para el distrito
	FotoBaseURL string `json:"foto_base_url"` // patrón con %s para el id de foto

	// Timeouts y caché
	FetchTimeout time.Duration `json:"fetch_timeout"`
	CSVCacheTTL  time.Duration `json:"csv_cache_ttl"`
	APICacheTTL  time.Duration `json:"api_cache_ttl"`
	XMLCacheTTL  time.Duration `json:"xml_cache_ttl"`

	// Límite de peticiones salientes por segundo hacia las fuentes
	FetchRateLimit float64 `json:"fetch_rate_limit"`

	// Rutas de archivos
	DataConfigPath string `json:"data_config_path"`
	ArchivePath    string `json:"archive_path"`

	// Logging
	LogLevel string `json:"log_level"`
}

// LoadConfig carga la configuración desde variables de entorno con valores por defecto
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:            getEnv("SERVER_PORT", "5000"),
		JWTSecret:       getEnv("JWT_SECRET_KEY", "clave_produccion_segura"),
		TokenExpiracion: getEnvDuration("JWT_ACCESS_TOKEN_EXPIRES", time.Hour),

		CSVURL:      getEnv("CSV_URL", "https://www.emol.com/especiales/2025/nacional/elecciones/data/dip.csv"),
		APIJSONURL:  getEnv("API_JSON_URL", "https://static.emol.cl/emol50/especiales/js/2025/elecciones/dbres.json"),
		XMLBaseURL:  getEnv("XML_BASE_URL", "https://www.emol.com/nacional/especiales/2025/presidenciales/dip_%s.xml"),
		FotoBaseURL: getEnv("FOTO_BASE_URL", "https://static.emol.cl/emol50/especiales/img/2025/elecciones/dip/%s.jpg"),

		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		CSVCacheTTL:  getEnvDuration("CSV_CACHE_TTL", 10*time.Minute),
		APICacheTTL:  getEnvDuration("API_CACHE_TTL", time.Minute),
		XMLCacheTTL:  getEnvDuration("XML_CACHE_TTL", time.Minute),

		FetchRateLimit: getEnvFloat("FETCH_RATE_LIMIT", 5.0),

		DataConfigPath: getEnv("DATA_CONFIG_PATH", "data/config.json"),
		ArchivePath:    getEnv("ARCHIVE_PATH", "resultados.db"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate valida la configuración cargada
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("puerto del servidor no puede estar vacío")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY no puede estar vacío")
	}
	if c.CSVURL == "" || c.APIJSONURL == "" || c.XMLBaseURL == "" {
		return fmt.Errorf("las URLs de las tres fuentes son obligatorias")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout debe ser positivo")
	}
	if c.FetchRateLimit <= 0 {
		return fmt.Errorf("fetch_rate_limit debe ser positivo")
	}
	return nil
}

// getEnv obtiene una variable de entorno o el valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration obtiene una duración desde el entorno.
// Acepta formato time.ParseDuration ("30s") o segundos enteros ("3600").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvFloat obtiene un float desde el entorno o el valor por defecto
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return defaultValue
}

// FusionPactos define una fusión de pactos para el modo simulación:
// todas las letras del conjunto pasan a una letra y nombre combinados.
type FusionPactos struct {
	Letras []string `json:"letras"`
	Letra  string   `json:"letra"`
	Nombre string   `json:"nombre"`
}

// DatosEleccion datos electorales cargados desde el archivo de configuración:
// escaños por distrito, nombres de pactos, valor de la UF para la
// bonificación por mujer electa y grupos de fusión para simulaciones.
type DatosEleccion struct {
	Escanos      map[string]int    `json:"escanos"`
	PactosNombre map[string]string `json:"pactos_nombre"`
	ValorUF      float64           `json:"valor_uf"`
	// Código de sexo que marca mujeres en las fuentes. Es una convención
	// del proveedor de datos ("M" en los feeds actuales), no una sigla.
	SexoFemenino string                  `json:"sexo_femenino"`
	Fusiones     map[string]FusionPactos `json:"fusiones"`
	Usuarios     map[string]string       `json:"usuarios"`
}

// LoadDatosEleccion carga los datos electorales desde un archivo JSON
func LoadDatosEleccion(path string) (*DatosEleccion, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer %s: %w", path, err)
	}

	datos := &DatosEleccion{}
	if err := json.Unmarshal(raw, datos); err != nil {
		return nil, fmt.Errorf("no se pudo parsear %s: %w", path, err)
	}

	if datos.ValorUF == 0 {
		datos.ValorUF = 500
	}
	if datos.SexoFemenino == "" {
		datos.SexoFemenino = "M"
	}
	if datos.Fusiones == nil {
		datos.Fusiones = DefaultFusiones()
	}

	if len(datos.Escanos) == 0 {
		return nil, fmt.Errorf("%s no define escaños por distrito", path)
	}

	return datos, nil
}

// DefaultFusiones devuelve los grupos de fusión incorporados
func DefaultFusiones() map[string]FusionPactos {
	return map[string]FusionPactos{
		"derechas": {
			Letras: []string{"J", "K"},
			Letra:  "JK",
			Nombre: "Derechas Unidas (J+K)",
		},
		"izquierdas": {
			Letras: []string{"A", "B", "C", "D", "F", "G", "H"},
			Letra:  "IZQ",
			Nombre: "Izquierdas Unidas (A+B+C+D+F+G+H)",
		},
	}
}

// NombrePacto devuelve el nombre de un pacto o un nombre genérico
func (d *DatosEleccion) NombrePacto(letra string) string {
	if nombre, ok := d.PactosNombre[letra]; ok {
		return nombre
	}
	return fmt.Sprintf("Pacto %s", letra)
}
