package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.OrderExporter = (*Exporter)(nil)

type packedItemDocument struct {
	Reference   string           `json:"reference"`
	Description string           `json:"description"`
	Depth       int              `json:"depth"`
	Height      int              `json:"height"`
	Length      int              `json:"length"`
	Position    positionDocument `json:"position"`
	Color       string           `json:"color"`
	ColorEdge   string           `json:"colorEdge"`
}

type positionDocument struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type containerDocument struct {
	Reference      string               `json:"reference"`
	Volume         int                  `json:"volume"`
	Depth          int                  `json:"depth"`
	Height         int                  `json:"height"`
	Length         int                  `json:"length"`
	Color          string               `json:"color"`
	ColorEdge      string               `json:"colorEdge"`
	Closed         bool                 `json:"closed"`
	OccupiedVolume int                  `json:"occupiedVolume"`
	Items          []packedItemDocument `json:"items"`
}

type shipmentDocument struct {
	ID         string              `json:"id"`
	Cost       float64             `json:"cost"`
	Status     string              `json:"status"`
	Containers []containerDocument `json:"containers"`
}

type exportedOrderDocument struct {
	ID          int                `json:"id"`
	Date        dateDocument       `json:"date"`
	Destination *personDocument    `json:"destination"`
	Customer    *customerDocument  `json:"customer"`
	Shipments   []shipmentDocument `json:"shipments"`
}

type chartDataset struct {
	Label string    `json:"label,omitempty"`
	Data  []float64 `json:"data"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDocument struct {
	Type  string    `json:"type"`
	Data  chartData `json:"data"`
	Title string    `json:"title"`
}

// Exporter writes documents as indented JSON files into one directory,
// creating it on first use.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// ExportOrder writes order-<id>.json and returns its path. The order must
// have an id and a date.
func (e *Exporter) ExportOrder(ctx context.Context, o *order.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if o == nil {
		return "", order.ErrOrderIsNotConstructed
	}

	doc, err := orderToDocument(o)
	if err != nil {
		return "", err
	}

	return e.write(fmt.Sprintf("order-%d", doc.ID), doc)
}

// ExportChart writes <name>.json and returns its path.
func (e *Exporter) ExportChart(ctx context.Context, name string, chart services.Chart) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q is not a file name", name))
	}

	doc := chartDocument{
		Type:  string(chart.Type),
		Title: chart.Title,
		Data: chartData{
			Labels:   chart.Labels,
			Datasets: make([]chartDataset, 0, len(chart.Datasets)),
		},
	}
	for _, ds := range chart.Datasets {
		doc.Data.Datasets = append(doc.Data.Datasets, chartDataset{Label: ds.Label, Data: ds.Data})
	}

	return e.write(name, doc)
}

func (e *Exporter) write(name string, doc any) (string, error) {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}

	if err = os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, name+".json")
	if err = os.WriteFile(path, append(body, '\n'), 0o644); err != nil { //nolint:gosec // exported documents are public
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func orderToDocument(o *order.Order) (exportedOrderDocument, error) {
	snap := o.Snapshot()
	if snap.ID == order.UnsetID {
		return exportedOrderDocument{}, errs.NewValueIsRequiredError("id")
	}
	if !snap.HasDate {
		return exportedOrderDocument{}, errs.NewValueIsRequiredError("date")
	}

	doc := exportedOrderDocument{
		ID:        snap.ID,
		Date:      dateDocument{Day: snap.Date.Day(), Month: int(snap.Date.Month()), Year: snap.Date.Year()},
		Shipments: make([]shipmentDocument, 0, len(snap.Shipments)),
	}

	if snap.Destination != nil {
		d := contactToDocument(snap.Destination)
		doc.Destination = &d
	}
	if c := snap.Customer; c != nil {
		contact := contactToDocument(c)
		doc.Customer = &customerDocument{
			ID:             c.ID(),
			Name:           contact.Name,
			Address:        contact.Address,
			BillingAddress: addressToDocument(c.BillingAddress()),
		}
	}

	for _, s := range snap.Shipments {
		sd := shipmentDocument{
			ID:         s.ID.String(),
			Cost:       s.Cost,
			Status:     s.Status.String(),
			Containers: make([]containerDocument, 0, len(s.Containers)),
		}
		for _, c := range s.Containers {
			sd.Containers = append(sd.Containers, containerToDocument(c))
		}
		doc.Shipments = append(doc.Shipments, sd)
	}

	return doc, nil
}

func containerToDocument(c order.ContainerSnapshot) containerDocument {
	doc := containerDocument{
		Reference:      c.Reference,
		Volume:         packing.ContainerVolume,
		Depth:          packing.ContainerDepth,
		Height:         packing.ContainerHeight,
		Length:         packing.ContainerLength,
		Color:          c.FillColor.String(),
		ColorEdge:      c.EdgeColor.String(),
		Closed:         c.Closed,
		OccupiedVolume: c.OccupiedVolume,
		Items:          make([]packedItemDocument, 0, len(c.Items)),
	}
	for _, p := range c.Items {
		item := p.Item()
		doc.Items = append(doc.Items, packedItemDocument{
			Reference:   item.Reference(),
			Description: item.Description(),
			Depth:       item.Depth(),
			Height:      item.Height(),
			Length:      item.Length(),
			Position:    positionDocument{X: p.Position().X(), Y: p.Position().Y(), Z: p.Position().Z()},
			Color:       p.FillColor().String(),
			ColorEdge:   p.EdgeColor().String(),
		})
	}
	return doc
}
