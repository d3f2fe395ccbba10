package cli

import (
	"errors"
	"fmt"
	"io"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/workflow"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// planFile is the YAML form of a workflow plan:
//
//	shipments:
//	  - containers:
//	      - reference: C1
//	        color: "#0000ff"
//	        colorEdge: "#000000"
//	        items:
//	          - reference: ITEM1
//	            position: {x: 0, y: 0, z: 0}
//	            color: "#00ff00"
//	    transitions: [CLOSED, SHIPPED, RECEIVED]
//	close: true
//	export: true
type planFile struct {
	Shipments []shipmentEntry `yaml:"shipments"`
	Close     bool            `yaml:"close"`
	Export    bool            `yaml:"export"`
}

type shipmentEntry struct {
	Containers  []containerEntry `yaml:"containers"`
	Transitions []string         `yaml:"transitions"`
}

type containerEntry struct {
	Reference string           `yaml:"reference"`
	Color     string           `yaml:"color"`
	ColorEdge string           `yaml:"colorEdge"`
	Items     []placementEntry `yaml:"items"`
}

type placementEntry struct {
	Reference string        `yaml:"reference"`
	Position  positionEntry `yaml:"position"`
	Color     string        `yaml:"color"`
}

type positionEntry struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// LoadPlan reads a YAML (or JSON) plan. An empty document is an empty plan.
func LoadPlan(r io.Reader) (workflow.Plan, error) {
	var file planFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return workflow.Plan{}, errs.NewValueIsInvalidErrorWithCause("plan", err)
	}
	return file.toPlan()
}

func (f planFile) toPlan() (workflow.Plan, error) {
	plan := workflow.Plan{
		Shipments: make([]workflow.ShipmentPlan, 0, len(f.Shipments)),
		Close:     f.Close,
		Export:    f.Export,
	}

	for i, s := range f.Shipments {
		sp, err := s.toPlan()
		if err != nil {
			return workflow.Plan{}, fmt.Errorf("shipments[%d]: %w", i, err)
		}
		plan.Shipments = append(plan.Shipments, sp)
	}
	return plan, nil
}

func (s shipmentEntry) toPlan() (workflow.ShipmentPlan, error) {
	var sp workflow.ShipmentPlan

	for i, c := range s.Containers {
		cp, err := c.toPlan()
		if err != nil {
			return workflow.ShipmentPlan{}, fmt.Errorf("containers[%d]: %w", i, err)
		}
		sp.Containers = append(sp.Containers, cp)
	}

	for i, raw := range s.Transitions {
		status, err := shipment.ParseStatus(raw)
		if err != nil {
			return workflow.ShipmentPlan{}, fmt.Errorf("transitions[%d]: %w", i, err)
		}
		sp.Transitions = append(sp.Transitions, status)
	}
	return sp, nil
}

func (c containerEntry) toPlan() (workflow.ContainerPlan, error) {
	fill, err := kernel.ColorFromHex(c.Color)
	if err != nil {
		return workflow.ContainerPlan{}, err
	}
	edge, err := kernel.ColorFromHex(c.ColorEdge)
	if err != nil {
		return workflow.ContainerPlan{}, err
	}

	cp := workflow.ContainerPlan{Reference: c.Reference, Fill: fill, Edge: edge}
	for i, p := range c.Items {
		pos, err := kernel.NewPosition(p.Position.X, p.Position.Y, p.Position.Z)
		if err != nil {
			return workflow.ContainerPlan{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		color, err := kernel.ColorFromHex(p.Color)
		if err != nil {
			return workflow.ContainerPlan{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		cp.Items = append(cp.Items, commands.Placement{ItemReference: p.Reference, Position: pos, Color: color})
	}
	return cp, nil
}
