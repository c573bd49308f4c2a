package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"electoral/allocation"
)

// ExportService genera el archivo Excel del hemiciclo nacional
type ExportService struct{}

// NewExportService crea el servicio de exportación
func NewExportService() *ExportService {
	return &ExportService{}
}

// ExcelNacional arma un libro Excel con dos hojas: totales por pacto y
// diputados electos. El llamador es responsable de cerrar el archivo.
func (s *ExportService) ExcelNacional(resultado *allocation.ResultadoNacional) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creando el estilo de encabezados: %w", err)
	}

	if err := s.hojaPactos(f, resultado, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := s.hojaElectos(f, resultado, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	// la hoja por defecto sobra una vez creadas las propias
	f.DeleteSheet("Sheet1")

	return f, nil
}

func (s *ExportService) hojaPactos(f *excelize.File, resultado *allocation.ResultadoNacional, headerStyle int) error {
	hoja := "Pactos"
	index, err := f.NewSheet(hoja)
	if err != nil {
		return fmt.Errorf("error creando la hoja de pactos: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Letra", "Pacto", "Escaños", "% Nacional",
		"Mujeres Electas", "Bonificación", "Distritos Ganados",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(hoja, cell, header)
		f.SetCellStyle(hoja, cell, cell, headerStyle)
	}

	for rowIdx, pacto := range resultado.PactosNacionales {
		row := rowIdx + 2
		valores := []interface{}{
			pacto.Letra,
			pacto.Nombre,
			pacto.EscanosTotales,
			pacto.PorcentajeNacional,
			pacto.MujeresTotales,
			pacto.BonificacionTotal,
			pacto.DistritosGanados,
		}
		for col, valor := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(hoja, cell, valor)
		}
	}

	// fila de totales al final
	totalRow := len(resultado.PactosNacionales) + 2
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	f.SetCellValue(hoja, cell, "TOTAL")
	cell, _ = excelize.CoordinatesToCellName(3, totalRow)
	f.SetCellValue(hoja, cell, resultado.Estadisticas.TotalEscanos)
	cell, _ = excelize.CoordinatesToCellName(5, totalRow)
	f.SetCellValue(hoja, cell, resultado.Estadisticas.TotalMujeres)

	return nil
}

func (s *ExportService) hojaElectos(f *excelize.File, resultado *allocation.ResultadoNacional, headerStyle int) error {
	hoja := "Diputados Electos"
	if _, err := f.NewSheet(hoja); err != nil {
		return fmt.Errorf("error creando la hoja de electos: %w", err)
	}

	headers := []string{
		"Nombre", "Pacto", "Partido", "Cupo", "Distrito", "Votos", "Sexo",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(hoja, cell, header)
		f.SetCellStyle(hoja, cell, cell, headerStyle)
	}

	for rowIdx, electo := range resultado.DiputadosElectos {
		row := rowIdx + 2
		valores := []interface{}{
			electo.Nombre,
			electo.PactoNombre,
			electo.Partido,
			electo.Cupo,
			electo.Distrito,
			electo.Votos,
			electo.Sexo,
		}
		for col, valor := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(hoja, cell, valor)
		}
	}

	return nil
}
