package models

// Monument is a historic site from GET /spots/monuments.
type Monument struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	City        string      `json:"city"`
	Images      []string    `json:"images"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	OpeningTime string      `json:"openingTime,omitempty"`
	ClosingTime string      `json:"closingTime,omitempty"`
	EntryFee    float64     `json:"entryFee,omitempty"`
}

// Restaurant is a dining spot from GET /spots/restaurants.
type Restaurant struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Cuisine     string      `json:"cuisine"`
	City        string      `json:"city"`
	Images      []string    `json:"images"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	PriceRange  string      `json:"priceRange,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
}

// ExchangeBroker is a currency exchange office from GET /exchanges.
type ExchangeBroker struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	Images      []string           `json:"images"`
	Coordinates *Coordinate        `json:"coordinates,omitempty"`
	Rates       map[string]float64 `json:"rates,omitempty"`
}

// ESIM is a data plan offered by GET /esims.
type ESIM struct {
	ID          string   `json:"_id"`
	Provider    string   `json:"provider"`
	DataGB      float64  `json:"dataGb"`
	ValidDays   int      `json:"validDays"`
	PriceMAD    float64  `json:"priceMad"`
	Images      []string `json:"images"`
	Coverage    string   `json:"coverage,omitempty"`
	IsUnlimited bool     `json:"isUnlimited,omitempty"`
}

// ESIMPurchaseRequest is the body of POST /esims.
type ESIMPurchaseRequest struct {
	ESIMID string `json:"esimId"`
	Email  string `json:"email,omitempty"`
}

// ESIMPurchase is the backend's answer to a purchase.
type ESIMPurchase struct {
	ID            string `json:"_id"`
	ESIMID        string `json:"esimId"`
	Status        string `json:"status"`
	ActivationURL string `json:"activationUrl,omitempty"`
	QRCode        string `json:"qrCode,omitempty"`
}
