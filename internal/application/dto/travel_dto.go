package dto

// TravelTimeRequest body de POST /api/travel-time.
type TravelTimeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// TravelTimeResponse minutos estimados de viaje por carretera.
type TravelTimeResponse struct {
	TravelTime int `json:"travel_time"`
}
