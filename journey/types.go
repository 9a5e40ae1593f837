package journey

// Itinerary kinds.
const (
	KindDirect      = "DIRECT"
	KindOneTransfer = "1_TRANSFER"
)

// Plan statuses.
const (
	StatusPlanned     = "PLANNED"
	StatusNoRoute     = "NO_ROUTE"
	StatusUnknownCity = "UNKNOWN_CITY"
)

// Leg is one ridden segment of an itinerary. Departure and Arrival carry the
// timetable text unchanged, including hours past 24 on overnight services.
type Leg struct {
	TripID       string  `json:"TripId"`
	FromStopID   string  `json:"FromStopId"`
	FromStopName string  `json:"FromStopName"`
	ToStopID     string  `json:"ToStopId"`
	ToStopName   string  `json:"ToStopName"`
	Departure    string  `json:"Departure"`
	Arrival      string  `json:"Arrival"`
	DistanceKM   float64 `json:"DistanceKm,omitempty"`
}

// Itinerary is a rideable connection between two cities, one leg when direct
// and two when a transfer is needed.
type Itinerary struct {
	Kind             string `json:"Kind"`
	Origin           string `json:"Origin"`
	Destination      string `json:"Destination"`
	TransferStopName string `json:"TransferStop,omitempty"`
	Legs             []Leg  `json:"Legs"`
	ElapsedSeconds   int    `json:"ElapsedSeconds"`
}

// Plan is the planning outcome for one travel order. Origin and Destination
// are canonical city names; UnknownCity names the city that could not be
// mapped to any stop when Status is UNKNOWN_CITY.
type Plan struct {
	OrderID     string     `json:"OrderId,omitempty"`
	Origin      string     `json:"Origin,omitempty"`
	Destination string     `json:"Destination,omitempty"`
	Status      string     `json:"Status"`
	UnknownCity string     `json:"UnknownCity,omitempty"`
	Itinerary   *Itinerary `json:"Itinerary,omitempty"`
}
