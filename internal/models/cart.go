package models

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine est une ligne de panier valorisée au prix courant du catalogue.
type CartLine struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}
