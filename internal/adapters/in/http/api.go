package http

// Request and response bodies of the /api/v1 routes. Field names follow
// openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OrderID struct {
	ID int `json:"id"`
}

type ShipmentID struct {
	ID string `json:"id"`
}

type NewShipment struct {
	ID *string `json:"id,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type Placement struct {
	Reference string   `json:"reference"`
	Position  Position `json:"position"`
	Color     string   `json:"color"`
}

type NewContainer struct {
	Reference string      `json:"reference"`
	Color     string      `json:"color"`
	ColorEdge string      `json:"colorEdge"`
	Items     []Placement `json:"items"`
}

type ShipmentSummary struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Containers int     `json:"containers"`
	Items      int     `json:"items"`
	Cost       float64 `json:"cost"`
}

type OrderSummary struct {
	ID             int               `json:"id"`
	Date           string            `json:"date,omitempty"`
	CustomerID     int               `json:"customerId,omitempty"`
	CustomerName   string            `json:"customerName,omitempty"`
	Items          int               `json:"items"`
	RemainingItems int               `json:"remainingItems"`
	Closed         bool              `json:"closed"`
	Cost           float64           `json:"cost"`
	Shipments      []ShipmentSummary `json:"shipments"`
}

type OrderListEntry struct {
	ID             int     `json:"id"`
	CustomerID     int     `json:"customerId,omitempty"`
	CustomerName   string  `json:"customerName,omitempty"`
	Items          int     `json:"items"`
	RemainingItems int     `json:"remainingItems"`
	Shipments      int     `json:"shipments"`
	Closed         bool    `json:"closed"`
	Cost           float64 `json:"cost"`
}

type ExportedFiles struct {
	Files []string `json:"files"`
}
