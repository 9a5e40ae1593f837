package formatter

import (
	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/pathfinder"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
	"github.com/theoremus-urban-solutions/travel-order-resolver/utils"
)

// ResolutionResponse is the envelope for /api/resolve.json.
type ResolutionResponse struct {
	ResponseTimestamp string                `json:"ResponseTimestamp"`
	ProducerRef       string                `json:"ProducerRef,omitempty"`
	Resolutions       []resolver.Resolution `json:"Resolutions"`
}

// JourneyResponse is the envelope for /api/journeys.json and .xml.
type JourneyResponse struct {
	ResponseTimestamp string         `json:"ResponseTimestamp"`
	ProducerRef       string         `json:"ProducerRef,omitempty"`
	ValidUntil        string         `json:"ValidUntil,omitempty"`
	Journeys          []journey.Plan `json:"Journeys"`
}

// StationsResponse is the envelope for /api/stations.json: the ranked hub
// candidates for one city, the disambiguation surface for callers.
type StationsResponse struct {
	ResponseTimestamp string                    `json:"ResponseTimestamp"`
	ProducerRef       string                    `json:"ProducerRef,omitempty"`
	City              string                    `json:"City"`
	Hubs              []pathfinder.HubCandidate `json:"Hubs"`
}

// BuildResolutionResponse stamps a resolution envelope.
func BuildResolutionResponse(resolutions []resolver.Resolution, producerRef string) *ResolutionResponse {
	return &ResolutionResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		ProducerRef:       producerRef,
		Resolutions:       resolutions,
	}
}

// BuildJourneyResponse stamps a journey envelope. validUntil may be empty
// when the caller serves uncached results.
func BuildJourneyResponse(plans []journey.Plan, producerRef, validUntil string) *JourneyResponse {
	return &JourneyResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		ProducerRef:       producerRef,
		ValidUntil:        validUntil,
		Journeys:          plans,
	}
}

// BuildStationsResponse stamps a stations envelope.
func BuildStationsResponse(city string, hubs []pathfinder.HubCandidate, producerRef string) *StationsResponse {
	return &StationsResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		ProducerRef:       producerRef,
		City:              city,
		Hubs:              hubs,
	}
}
