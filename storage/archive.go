// Package storage persiste el historial de cálculos nacionales en SQLite.
// Cada cálculo del hemiciclo queda archivado con sus totales y el JSON
// completo del resultado, para auditoría y para el endpoint de historial.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"electoral/allocation"
)

// ErrRegistroNoEncontrado no hay un cálculo archivado bajo el id pedido
var ErrRegistroNoEncontrado = errors.New("registro no encontrado")

// ArchivoResultados conexión al archivo de resultados
type ArchivoResultados struct {
	conn *sql.DB
}

// RegistroCalculo fila del historial de cálculos nacionales
type RegistroCalculo struct {
	ID                  int       `json:"id"`
	Timestamp           time.Time `json:"timestamp"`
	Modo                string    `json:"modo"`
	Usuario             string    `json:"usuario"`
	TotalDistritos      int       `json:"total_distritos"`
	DistritosProcesados int       `json:"distritos_procesados"`
	DistritosError      int       `json:"distritos_error"`
	TotalEscanos        int       `json:"total_escanos"`
	TotalMujeres        int       `json:"total_mujeres"`
	PorcentajeMujeres   float64   `json:"porcentaje_mujeres"`
}

// NewArchivoResultados abre (o crea) el archivo de resultados en la ruta
// indicada y prepara el esquema
func NewArchivoResultados(path string) (*ArchivoResultados, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error abriendo el archivo de resultados: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error conectando al archivo de resultados: %w", err)
	}

	archivo := &ArchivoResultados{conn: conn}
	if err := archivo.crearEsquema(); err != nil {
		conn.Close()
		return nil, err
	}

	return archivo, nil
}

// Close cierra la conexión
func (a *ArchivoResultados) Close() error {
	return a.conn.Close()
}

func (a *ArchivoResultados) crearEsquema() error {
	query := `
	CREATE TABLE IF NOT EXISTS calculos_nacionales (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modo TEXT NOT NULL,
		usuario TEXT NOT NULL DEFAULT '',
		total_distritos INTEGER NOT NULL,
		distritos_procesados INTEGER NOT NULL,
		distritos_error INTEGER NOT NULL,
		total_escanos INTEGER NOT NULL,
		total_mujeres INTEGER NOT NULL,
		porcentaje_mujeres REAL NOT NULL,
		resultado TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculos_timestamp ON calculos_nacionales(timestamp);
	CREATE INDEX IF NOT EXISTS idx_calculos_modo ON calculos_nacionales(modo);
	`

	if _, err := a.conn.Exec(query); err != nil {
		return fmt.Errorf("error creando el esquema del archivo: %w", err)
	}

	return nil
}

// GuardarCalculoNacional archiva un cálculo nacional completo junto con el
// usuario que lo pidió. Devuelve el id del registro.
func (a *ArchivoResultados) GuardarCalculoNacional(resultado *allocation.ResultadoNacional, usuario string) (int64, error) {
	resultadoJSON, err := json.Marshal(resultado)
	if err != nil {
		return 0, fmt.Errorf("error serializando el resultado nacional: %w", err)
	}

	query := `
		INSERT INTO calculos_nacionales (
			timestamp, modo, usuario, total_distritos, distritos_procesados,
			distritos_error, total_escanos, total_mujeres, porcentaje_mujeres, resultado
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := a.conn.Exec(query,
		time.Now().UTC(),
		resultado.Mode,
		usuario,
		resultado.TotalDistritos,
		resultado.DistritosProcesados,
		resultado.DistritosError,
		resultado.Estadisticas.TotalEscanos,
		resultado.Estadisticas.TotalMujeres,
		resultado.Estadisticas.PorcentajeMujeres,
		string(resultadoJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("error guardando el cálculo nacional: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error obteniendo el id del registro: %w", err)
	}

	return id, nil
}

// Historial devuelve los cálculos más recientes, del más nuevo al más
// viejo. Con modo no vacío filtra por modo de simulación.
func (a *ArchivoResultados) Historial(limit int, modo string) ([]RegistroCalculo, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, timestamp, modo, usuario, total_distritos,
		       distritos_procesados, distritos_error, total_escanos,
		       total_mujeres, porcentaje_mujeres
		FROM calculos_nacionales
	`
	args := []interface{}{}
	if modo != "" {
		query += " WHERE modo = ?"
		args = append(args, modo)
	}
	query += " ORDER BY timestamp DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando el historial: %w", err)
	}
	defer rows.Close()

	var registros []RegistroCalculo
	for rows.Next() {
		var r RegistroCalculo
		if err := rows.Scan(
			&r.ID, &r.Timestamp, &r.Modo, &r.Usuario, &r.TotalDistritos,
			&r.DistritosProcesados, &r.DistritosError, &r.TotalEscanos,
			&r.TotalMujeres, &r.PorcentajeMujeres,
		); err != nil {
			return nil, fmt.Errorf("error leyendo el historial: %w", err)
		}
		registros = append(registros, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recorriendo el historial: %w", err)
	}

	return registros, nil
}

// ObtenerCalculo recupera el resultado nacional archivado bajo el id
// indicado
func (a *ArchivoResultados) ObtenerCalculo(id int64) (*allocation.ResultadoNacional, error) {
	var resultadoJSON string
	err := a.conn.QueryRow(
		"SELECT resultado FROM calculos_nacionales WHERE id = ?", id,
	).Scan(&resultadoJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("cálculo %d: %w", id, ErrRegistroNoEncontrado)
	}
	if err != nil {
		return nil, fmt.Errorf("error consultando el cálculo %d: %w", id, err)
	}

	var resultado allocation.ResultadoNacional
	if err := json.Unmarshal([]byte(resultadoJSON), &resultado); err != nil {
		return nil, fmt.Errorf("error deserializando el cálculo %d: %w", id, err)
	}

	return &resultado, nil
}
