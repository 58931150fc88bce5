// Package pdf implementa la generación de etiquetas de activo (PDF con QR).
//
// Layout de la etiqueta (página pequeña apaisada, una etiqueta por página):
//
//	┌──────────────────────────────────┐
//	│  ┌──────┐   PAT-000042           │
//	│  │  QR  │   Notebook Dell 5420   │
//	│  └──────┘   Serie: 7XK9Q33       │
//	└──────────────────────────────────┘
//
// El QR codifica el payload de escaneo (code envuelto), no el tag: el tag es
// legible a ojo y el QR resuelve siempre al mismo activo aunque se reimprima
// la etiqueta.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appassets "github.com/jhoicas/Activos-api/internal/application/assets"
	domassets "github.com/jhoicas/Activos-api/internal/domain/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appassets.LabelGenerator = (*LabelGenerator)(nil)

// LabelGenerator genera etiquetas de activo usando Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateAssetLabel genera el PDF de etiqueta y devuelve sus bytes.
func (g *LabelGenerator) GenerateAssetLabel(asset *entity.AssetUnit, productName string) ([]byte, error) {
	cfg := config.NewBuilder().
		// 90x40mm, tamaño común de rollo de etiquetas térmicas.
		WithDimensions(90, 40).
		WithLeftMargin(3).WithRightMargin(3).
		WithTopMargin(3).WithBottomMargin(3).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de activo "+asset.Tag, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(labelRow(asset, productName))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow: QR (izq) + tag, producto y serie (der).
func labelRow(asset *entity.AssetUnit, productName string) core.Row {
	qrPayload := domassets.ScanPayload(asset.Code)

	right := []core.Component{
		text.New(asset.Tag, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		}),
		text.New(productName, props.Text{
			Size: 9, Top: 12,
		}),
	}
	if asset.Serial != "" {
		right = append(right, text.New("Serie: "+asset.Serial, props.Text{
			Size: 8, Top: 19, Color: colorGray,
		}))
	}

	return row.New(34).Add(
		col.New(4).Add(code.NewQr(qrPayload, props.Rect{
			Percent: 100,
			Center:  true,
		})),
		col.New(8).Add(right...),
	)
}
