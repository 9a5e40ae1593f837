package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
)

// BuildXML serializes a journey response to XML
func (rb *responseBuilder) BuildXML(res *JourneyResponse) []byte {
	var b strings.Builder
	b.WriteString("<JourneyResponse>")
	if res.ResponseTimestamp != "" {
		b.WriteString("<ResponseTimestamp>")
		b.WriteString(xmlEscape(res.ResponseTimestamp))
		b.WriteString("</ResponseTimestamp>")
	}
	if res.ProducerRef != "" {
		b.WriteString("<ProducerRef>")
		b.WriteString(xmlEscape(res.ProducerRef))
		b.WriteString("</ProducerRef>")
	}
	if res.ValidUntil != "" {
		b.WriteString("<ValidUntil>")
		b.WriteString(xmlEscape(res.ValidUntil))
		b.WriteString("</ValidUntil>")
	}
	b.WriteString("<Journeys>")
	for _, p := range res.Journeys {
		writeJourneyXML(&b, p)
	}
	b.WriteString("</Journeys>")
	b.WriteString("</JourneyResponse>")
	return []byte(b.String())
}

func writeJourneyXML(b *strings.Builder, p journey.Plan) {
	b.WriteString("<Journey>")
	if p.OrderID != "" {
		b.WriteString("<OrderId>")
		b.WriteString(xmlEscape(p.OrderID))
		b.WriteString("</OrderId>")
	}
	if p.Origin != "" {
		b.WriteString("<Origin>")
		b.WriteString(xmlEscape(p.Origin))
		b.WriteString("</Origin>")
	}
	if p.Destination != "" {
		b.WriteString("<Destination>")
		b.WriteString(xmlEscape(p.Destination))
		b.WriteString("</Destination>")
	}
	b.WriteString("<Status>")
	b.WriteString(xmlEscape(p.Status))
	b.WriteString("</Status>")
	if p.UnknownCity != "" {
		b.WriteString("<UnknownCity>")
		b.WriteString(xmlEscape(p.UnknownCity))
		b.WriteString("</UnknownCity>")
	}
	if p.Itinerary != nil {
		writeItineraryXML(b, p.Itinerary)
	}
	b.WriteString("</Journey>")
}

func writeItineraryXML(b *strings.Builder, it *journey.Itinerary) {
	b.WriteString("<Itinerary>")
	b.WriteString("<Kind>")
	b.WriteString(xmlEscape(it.Kind))
	b.WriteString("</Kind>")
	if it.TransferStopName != "" {
		b.WriteString("<TransferStop>")
		b.WriteString(xmlEscape(it.TransferStopName))
		b.WriteString("</TransferStop>")
	}
	b.WriteString("<ElapsedSeconds>")
	b.WriteString(strconv.Itoa(it.ElapsedSeconds))
	b.WriteString("</ElapsedSeconds>")
	b.WriteString("<Legs>")
	for _, leg := range it.Legs {
		writeLegXML(b, leg)
	}
	b.WriteString("</Legs>")
	b.WriteString("</Itinerary>")
}

func writeLegXML(b *strings.Builder, leg journey.Leg) {
	b.WriteString("<Leg>")
	if leg.TripID != "" {
		b.WriteString("<TripId>")
		b.WriteString(xmlEscape(leg.TripID))
		b.WriteString("</TripId>")
	}
	if leg.FromStopName != "" {
		b.WriteString("<FromStopName>")
		b.WriteString(xmlEscape(leg.FromStopName))
		b.WriteString("</FromStopName>")
	}
	if leg.ToStopName != "" {
		b.WriteString("<ToStopName>")
		b.WriteString(xmlEscape(leg.ToStopName))
		b.WriteString("</ToStopName>")
	}
	if leg.Departure != "" {
		b.WriteString("<Departure>")
		b.WriteString(xmlEscape(leg.Departure))
		b.WriteString("</Departure>")
	}
	if leg.Arrival != "" {
		b.WriteString("<Arrival>")
		b.WriteString(xmlEscape(leg.Arrival))
		b.WriteString("</Arrival>")
	}
	if leg.DistanceKM > 0 {
		b.WriteString("<DistanceKm>")
		b.WriteString(strconv.FormatFloat(leg.DistanceKM, 'f', 1, 64))
		b.WriteString("</DistanceKm>")
	}
	b.WriteString("</Leg>")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
