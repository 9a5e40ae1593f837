package travelorder

import (
	"net/http"
)

func handleResolveJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	m, err := parseAndValidateOrderQuery(params)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	buf, err := responses.GetResolutionResponse(m["id"], m["q"])
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleJourneysJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	m, err := parseAndValidateOrderQuery(params)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	res := service.ResolveSentence(m["id"], m["q"])
	if !res.Accepted() {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("Order " + m["id"] + " did not resolve to an origin and destination."))
		return
	}
	buf, err := responses.GetJourneyResponse(res, "json")
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleJourneysXML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	m, err := parseAndValidateOrderQuery(params)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	res := service.ResolveSentence(m["id"], m["q"])
	if !res.Accepted() {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("Order " + m["id"] + " did not resolve to an origin and destination."))
		return
	}
	buf, err := responses.GetJourneyResponse(res, "xml")
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleStationsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	m, err := parseAndValidateStationsQuery(params, service.Gazetteer())
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	limit, _ := parseNonNegativeInt(m["limit"])
	buf, err := responses.GetStationsResponse(m["city"], limit)
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	_, _ = w.Write(buf)
}
