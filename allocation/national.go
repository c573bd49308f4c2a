package allocation

import (
	"sort"
	"strconv"
	"strings"
)

// EstadisticasNacionales totales agregados de todos los distritos
type EstadisticasNacionales struct {
	TotalEscanos      int     `json:"total_escanos"`
	TotalDiputados    int     `json:"total_diputados"`
	TotalMujeres      int     `json:"total_mujeres"`
	PorcentajeMujeres float64 `json:"porcentaje_mujeres"`
}

// PactoNacional acumulado nacional de un pacto
type PactoNacional struct {
	Letra              string   `json:"letra"`
	Nombre             string   `json:"nombre"`
	EscanosTotales     int      `json:"escanos_totales"`
	MujeresTotales     int      `json:"mujeres_totales"`
	BonificacionTotal  float64  `json:"bonificacion_total"`
	DistritosGanados   int      `json:"distritos_ganados"`
	PorcentajeNacional float64  `json:"porcentaje_nacional"`
	CandidatosElectos  []Electo `json:"candidatos_electos"`
}

// ResultadoNacional hemiciclo nacional agregado
type ResultadoNacional struct {
	Success             bool                   `json:"success"`
	Mode                string                 `json:"mode"`
	TotalDistritos      int                    `json:"total_distritos"`
	DistritosProcesados int                    `json:"distritos_procesados"`
	DistritosError      int                    `json:"distritos_error"`
	Estadisticas        EstadisticasNacionales `json:"estadisticas_nacionales"`
	PactosNacionales    []PactoNacional        `json:"pactos_nacionales"`
	DiputadosElectos    []Electo               `json:"diputados_electos"`
}

// acumuladoPacto estado interno de agregación por pacto
type acumuladoPacto struct {
	letra            string
	nombre           string
	escanos          int
	mujeres          int
	bonificacion     float64
	electos          []Electo
	distritosGanados map[string]bool
}

// AgregadorNacional acumula resultados de distrito en estadísticas
// nacionales. Los distritos pueden agregarse en cualquier orden: el
// resultado final ordena explícitamente todas las listas, por lo que una
// corrida paralela por distrito produce el mismo resultado.
type AgregadorNacional struct {
	mode           string
	totalDistritos int
	procesados     int
	errores        int
	totalEscanos   int
	totalMujeres   int
	pactos         map[string]*acumuladoPacto
	electos        []Electo
}

// NewAgregadorNacional crea un agregador para la cantidad total de distritos
func NewAgregadorNacional(mode string, totalDistritos int) *AgregadorNacional {
	return &AgregadorNacional{
		mode:           mode,
		totalDistritos: totalDistritos,
		pactos:         make(map[string]*acumuladoPacto),
	}
}

// AgregarDistrito acumula un resultado de distrito exitoso
func (a *AgregadorNacional) AgregarDistrito(resultado *ResultadoDistrito) {
	a.procesados++
	a.totalEscanos += resultado.Escanos
	a.totalMujeres += resultado.ResumenMujeres.TotalMujeresElectas

	numero := numeroDistrito(resultado.Distrito)

	for _, pacto := range resultado.Pactos {
		acumulado, ok := a.pactos[pacto.Letra]
		if !ok {
			acumulado = &acumuladoPacto{
				letra:            pacto.Letra,
				nombre:           pacto.Nombre,
				distritosGanados: make(map[string]bool),
			}
			a.pactos[pacto.Letra] = acumulado
		}

		acumulado.escanos += pacto.Escanos
		acumulado.mujeres += pacto.MujeresElectas
		acumulado.bonificacion += pacto.Bonificacion
		if pacto.Escanos > 0 {
			acumulado.distritosGanados[resultado.Distrito] = true
		}

		for _, electo := range pacto.CandidatosElectos {
			electo.Distrito = resultado.Distrito
			electo.DistritoNumero = numero
			electo.PactoLetra = pacto.Letra
			electo.PactoNombre = pacto.Nombre

			acumulado.electos = append(acumulado.electos, electo)
			a.electos = append(a.electos, electo)
		}
	}
}

// RegistrarError cuenta un distrito que no pudo calcularse. La agregación
// continúa con el resto: un distrito fallido nunca aborta el cálculo
// nacional.
func (a *AgregadorNacional) RegistrarError(distrito string) {
	a.errores++
}

// Resultado cierra la agregación y devuelve el resultado nacional con
// todas las listas ordenadas de forma reproducible
func (a *AgregadorNacional) Resultado() *ResultadoNacional {
	resultado := &ResultadoNacional{
		Success:             true,
		Mode:                a.mode,
		TotalDistritos:      a.totalDistritos,
		DistritosProcesados: a.procesados,
		DistritosError:      a.errores,
		PactosNacionales:    make([]PactoNacional, 0, len(a.pactos)),
		DiputadosElectos:    ordenarElectos(a.electos),
	}

	resultado.Estadisticas = EstadisticasNacionales{
		TotalEscanos:   a.totalEscanos,
		TotalDiputados: len(a.electos),
		TotalMujeres:   a.totalMujeres,
	}
	if a.totalEscanos > 0 {
		pct := float64(a.totalMujeres) / float64(a.totalEscanos) * 100
		resultado.Estadisticas.PorcentajeMujeres = redondear(pct, 2)
	}

	for _, acumulado := range a.pactos {
		pacto := PactoNacional{
			Letra:             acumulado.letra,
			Nombre:            acumulado.nombre,
			EscanosTotales:    acumulado.escanos,
			MujeresTotales:    acumulado.mujeres,
			BonificacionTotal: acumulado.bonificacion,
			DistritosGanados:  len(acumulado.distritosGanados),
			CandidatosElectos: ordenarElectos(acumulado.electos),
		}
		if a.totalEscanos > 0 {
			pacto.PorcentajeNacional = redondear(float64(acumulado.escanos)/float64(a.totalEscanos)*100, 2)
		}
		resultado.PactosNacionales = append(resultado.PactosNacionales, pacto)
	}

	sort.SliceStable(resultado.PactosNacionales, func(i, j int) bool {
		if resultado.PactosNacionales[i].EscanosTotales != resultado.PactosNacionales[j].EscanosTotales {
			return resultado.PactosNacionales[i].EscanosTotales > resultado.PactosNacionales[j].EscanosTotales
		}
		return resultado.PactosNacionales[i].Letra < resultado.PactosNacionales[j].Letra
	})

	return resultado
}

// ordenarElectos copia y ordena una lista de electos por votos
// descendentes, con nombre y distrito como desempate
func ordenarElectos(electos []Electo) []Electo {
	ordenados := make([]Electo, len(electos))
	copy(ordenados, electos)

	sort.SliceStable(ordenados, func(i, j int) bool {
		if ordenados[i].Votos != ordenados[j].Votos {
			return ordenados[i].Votos > ordenados[j].Votos
		}
		if ordenados[i].Nombre != ordenados[j].Nombre {
			return ordenados[i].Nombre < ordenados[j].Nombre
		}
		return ordenados[i].Distrito < ordenados[j].Distrito
	})

	return ordenados
}

// numeroDistrito deriva el número correlativo desde el id "60NN"
func numeroDistrito(distrito string) int {
	if !strings.HasPrefix(distrito, "60") {
		return 0
	}
	numero, err := strconv.Atoi(strings.TrimPrefix(distrito, "60"))
	if err != nil {
		return 0
	}
	return numero
}
