// Package pdf genera la ficha técnica imprimible de una investigación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título  │  Área + Grado + Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AUTOR: Nombre del investigador                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN / CONCLUSIONES / RECOMENDACIONES               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALORACIÓN: promedio + total de comentarios                │
//	│  PREGUNTAS RESPONDIDAS: pregunta / respuesta                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/academico-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFichaGenerator implementa usecase.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

// NewMarotoFichaGenerator construye el generador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GenerarFicha genera la ficha técnica y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerarFicha(
	_ context.Context,
	inv *entity.Investigacion,
	respondidas []*entity.Pregunta,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha técnica: "+inv.Titulo, true).
		WithAuthor(inv.Autor.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(autorRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(seccionTextoRows("DESCRIPCIÓN", inv.Descripcion)...)
	m.AddRows(seccionTextoRows("CONCLUSIONES", inv.Conclusiones)...)
	m.AddRows(seccionTextoRows("RECOMENDACIONES", inv.Recomendaciones)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(valoracionRow(inv))

	if len(respondidas) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range preguntasRows(respondidas) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y área + grado + fecha de publicación (der).
func headerRow(inv *entity.Investigacion) core.Row {
	fecha := inv.CreatedAt.Format("02/01/2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New("FICHA TÉCNICA DE INVESTIGACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("Área: "+inv.Area, props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Grado académico: "+inv.GradoAcademico+"°", props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Publicada: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// autorRow: datos del investigador que publicó el trabajo.
func autorRow(inv *entity.Investigacion) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("AUTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Autor.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// seccionTextoRows: título de sección + cuerpo de texto libre.
func seccionTextoRows(titulo, cuerpo string) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		text.NewRow(alturaTexto(cuerpo), cuerpo, props.Text{
			Size: 9, Top: 1, Color: colorGray,
		}),
	}
}

// valoracionRow: promedio de puntaje y cantidad de comentarios recibidos.
func valoracionRow(inv *entity.Investigacion) core.Row {
	promedio := "Sin valoraciones"
	if inv.PuntajeTotal > 0 {
		promedio = fmt.Sprintf("%.1f / 5", inv.PromedioPuntaje)
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("VALORACIÓN PROMEDIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(promedio, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("COMENTARIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", inv.PuntajeTotal), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
		),
	)
}

// preguntasRows: una pareja pregunta/respuesta por consulta respondida.
func preguntasRows(respondidas []*entity.Pregunta) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("PREGUNTAS RESPONDIDAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, p := range respondidas {
		rows = append(rows,
			text.NewRow(alturaTexto(p.Texto), "P: "+p.Texto, props.Text{
				Style: fontstyle.Bold, Size: 8.5, Top: 1,
			}),
			text.NewRow(alturaTexto(p.Respuesta), "R: "+p.Respuesta, props.Text{
				Size: 8.5, Top: 1, Left: 3, Color: colorGray,
			}),
		)
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// alturaTexto estima la altura de fila necesaria asumiendo ~95 caracteres por
// línea al ancho útil de la página.
func alturaTexto(s string) float64 {
	lineas := len(s)/95 + 1
	return float64(lineas*4 + 3)
}
