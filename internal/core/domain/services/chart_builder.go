package services

import (
	"cmp"
	"slices"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ChartType names how a chart is drawn.
type ChartType string

const (
	ChartPie ChartType = "pie"
	ChartBar ChartType = "bar"
)

// Dataset is one series of a chart.
type Dataset struct {
	Label string
	Data  []float64
}

// Chart is a rendering-agnostic chart document: labels on one axis and one
// or more datasets with a value per label.
type Chart struct {
	Type     ChartType
	Title    string
	Labels   []string
	Datasets []Dataset
}

// ChartBuilder builds report charts from orders. It reads orders through
// their exported methods, so each order is observed under its own lock.
//
// Example usage:
//
//	builder := services.NewChartBuilder()
//	chart, err := builder.ItemsSentChart(o)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(chart.Datasets[0].Data) // [0.5 0.5]
type ChartBuilder struct{}

// NewChartBuilder creates a ChartBuilder.
func NewChartBuilder() ChartBuilder {
	return ChartBuilder{}
}

// ItemsSentChart builds a pie chart with the fraction of items not sent and
// the fraction sent. An order without items counts as fully sent.
//
// Returns:
//   - Chart: pie chart with labels "Items not sent" and "Items sent"
//   - error: if the order is nil or was not constructed
func (ChartBuilder) ItemsSentChart(o *order.Order) (Chart, error) {
	if err := o.Validate(); err != nil {
		return Chart{}, err
	}

	summary := o.Summary()
	notSent := 0.0
	if summary.Items > 0 {
		notSent = float64(summary.RemainingItems) / float64(summary.Items)
	}

	return Chart{
		Type:   ChartPie,
		Title:  "Items sent",
		Labels: []string{"Items not sent", "Items sent"},
		Datasets: []Dataset{
			{Data: []float64{notSent, 1 - notSent}},
		},
	}, nil
}

// OrdersByStateChart builds a bar chart counting open and closed orders.
func (ChartBuilder) OrdersByStateChart(orders []*order.Order) (Chart, error) {
	var open, closed float64
	for _, o := range orders {
		if o == nil {
			return Chart{}, errs.NewValueIsRequiredError("order")
		}
		if o.IsClosed() {
			closed++
		} else {
			open++
		}
	}

	return Chart{
		Type:   ChartBar,
		Title:  "Orders by state",
		Labels: []string{"Open", "Closed"},
		Datasets: []Dataset{
			{Label: "Number of orders", Data: []float64{open, closed}},
		},
	}, nil
}

// OrdersByCustomerChart builds a bar chart counting orders per customer,
// ordered by customer id. Orders without a customer are skipped.
func (ChartBuilder) OrdersByCustomerChart(orders []*order.Order) (Chart, error) {
	type customerCount struct {
		id    int
		name  string
		count float64
	}

	counts := make(map[int]*customerCount)
	for _, o := range orders {
		if o == nil {
			return Chart{}, errs.NewValueIsRequiredError("order")
		}
		customer := o.Customer()
		if customer == nil {
			continue
		}
		entry, ok := counts[customer.ID()]
		if !ok {
			entry = &customerCount{id: customer.ID(), name: customer.Name()}
			counts[customer.ID()] = entry
		}
		entry.count++
	}

	sorted := make([]*customerCount, 0, len(counts))
	for _, entry := range counts {
		sorted = append(sorted, entry)
	}
	slices.SortFunc(sorted, func(a, b *customerCount) int {
		return cmp.Compare(a.id, b.id)
	})

	labels := make([]string, 0, len(sorted))
	data := make([]float64, 0, len(sorted))
	for _, entry := range sorted {
		labels = append(labels, entry.name)
		data = append(data, entry.count)
	}

	return Chart{
		Type:   ChartBar,
		Title:  "Orders by customer",
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Number of orders", Data: data},
		},
	}, nil
}
