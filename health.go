package travelorder

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/travel-order-resolver/tracking"
)

type healthResponse struct {
	Status   string           `json:"status"`
	Cities   int              `json:"cities"`
	Stations int              `json:"stations"`
	Stops    int              `json:"stops"`
	Trips    int              `json:"trips"`
	Counts   tracking.Summary `json:"counts"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok"}
	if service != nil {
		resp.Cities = service.Gazetteer().CityCount()
		resp.Stations = service.Gazetteer().StationCount()
		if tt := service.Timetable(); tt != nil {
			resp.Stops = tt.StopCount()
			resp.Trips = tt.TripCount()
		}
		resp.Counts = service.Tracker().Counts()
	}
	_ = json.NewEncoder(w).Encode(resp)
}
