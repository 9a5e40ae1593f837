package travelorder

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/bluele/gcache"

	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
	"github.com/theoremus-urban-solutions/travel-order-resolver/formatter"
	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
	"github.com/theoremus-urban-solutions/travel-order-resolver/utils"
)

// ResponseCache memoizes rendered HTTP payloads. Entries are bounded by an
// LRU and expire after the configured TTL, the same window ValidUntil
// announces to clients.
type ResponseCache struct {
	svc   *Service
	cache gcache.Cache
}

// NewResponseCache sizes the cache from the global configuration.
func NewResponseCache(svc *Service) *ResponseCache {
	cfg := config.Config.Cache
	c := gcache.New(cfg.Size).
		LRU().
		Expiration(time.Duration(cfg.TTLSeconds) * time.Second).
		Build()
	return &ResponseCache{svc: svc, cache: c}
}

func (rc *ResponseCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (rc *ResponseCache) lookup(key string) ([]byte, bool) {
	v, err := rc.cache.Get(key)
	if err != nil {
		return nil, false
	}
	buf, ok := v.([]byte)
	return buf, ok
}

func (rc *ResponseCache) producerRef() string {
	ref := config.SelectFeed(rc.svc.feed).AgencyID
	if ref == "" {
		ref = "UNKNOWN"
	}
	return ref
}

// GetResolutionResponse renders the resolution for one sentence as JSON.
func (rc *ResponseCache) GetResolutionResponse(id, sentence string) ([]byte, error) {
	key := rc.memoKey("resolve", id, sentence)
	if buf, ok := rc.lookup(key); ok {
		return buf, nil
	}
	res := rc.svc.ResolveSentence(id, sentence)
	payload := formatter.BuildResolutionResponse([]resolver.Resolution{res}, rc.producerRef())
	buf := formatter.NewResponseBuilder().BuildJSON(payload)
	_ = rc.cache.Set(key, buf)
	return buf, nil
}

// GetJourneyResponse plans the journey for an accepted resolution and renders
// it in the requested format. The caller resolves first so rejected orders
// never reach the planner.
func (rc *ResponseCache) GetJourneyResponse(res resolver.Resolution, format string) ([]byte, error) {
	key := rc.memoKey("journeys", format, res.SentenceID, res.Origin.Key(), res.Destination.Key())
	if buf, ok := rc.lookup(key); ok {
		return buf, nil
	}
	plan := rc.svc.PlanJourney(res)
	if plan == nil {
		return nil, errors.New("no timetable loaded")
	}
	validUntil := utils.ValidUntilFrom(time.Now().Unix(), config.Config.Cache.TTLSeconds)
	payload := formatter.BuildJourneyResponse([]journey.Plan{*plan}, rc.producerRef(), validUntil)
	rb := formatter.NewResponseBuilder()
	var buf []byte
	if format == "xml" {
		buf = rb.BuildXML(payload)
	} else {
		buf = rb.BuildJSON(payload)
	}
	_ = rc.cache.Set(key, buf)
	return buf, nil
}

// GetStationsResponse renders the ranked hub candidates for one city as
// JSON. limit caps the list when non-negative.
func (rc *ResponseCache) GetStationsResponse(city string, limit int) ([]byte, error) {
	key := rc.memoKey("stations", city, strconv.Itoa(limit))
	if buf, ok := rc.lookup(key); ok {
		return buf, nil
	}
	pf := rc.svc.Pathfinder()
	if pf == nil {
		return nil, errors.New("no timetable loaded")
	}
	hubs := pf.RankHubs(city)
	if limit >= 0 && len(hubs) > limit {
		hubs = hubs[:limit]
	}
	payload := formatter.BuildStationsResponse(city, hubs, rc.producerRef())
	buf := formatter.NewResponseBuilder().BuildJSON(payload)
	_ = rc.cache.Set(key, buf)
	return buf, nil
}
