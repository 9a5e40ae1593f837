package travelorder

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func normalizeFormat(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "json" {
		return "json", nil
	}
	if s == "xml" {
		return "xml", nil
	}
	return "", &QueryError{Msg: "Unsupported format: " + s}
}

func parseNonNegativeInt(s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return -1, &QueryError{Msg: "Numeric parameter must be a non-negative integer."}
	}
	return v, nil
}

func ensureCityKnown(city string, gaz *gazetteer.Gazetteer) error {
	if len(gaz.LookupExact(nlp.Normalize(city))) == 0 {
		return &QueryError{Msg: "No such city: " + city + "."}
	}
	return nil
}

// parseAndValidateOrderQuery checks the parameters shared by the resolve and
// journeys endpoints: q carries the sentence, id the order identifier.
func parseAndValidateOrderQuery(params map[string]string) (map[string]string, error) {
	m := map[string]string{}
	for k, v := range params {
		m[lower(k)] = strings.TrimSpace(v)
	}
	if m["q"] == "" {
		return nil, &QueryError{Msg: "You must provide a q parameter."}
	}
	if m["id"] == "" {
		m["id"] = "1"
	}
	return m, nil
}

func parseAndValidateStationsQuery(params map[string]string, gaz *gazetteer.Gazetteer) (map[string]string, error) {
	m := map[string]string{}
	for k, v := range params {
		m[lower(k)] = strings.TrimSpace(v)
	}
	if m["city"] == "" {
		return nil, &QueryError{Msg: "You must provide a city parameter."}
	}
	if err := ensureCityKnown(m["city"], gaz); err != nil {
		return nil, err
	}
	if _, err := parseNonNegativeInt(m["limit"]); err != nil {
		return nil, err
	}
	return m, nil
}

func lower(s string) string {
	bs := []rune(s)
	for i, r := range bs {
		if r >= 'A' && r <= 'Z' {
			bs[i] = r + 32
		}
	}
	return string(bs)
}

func buildErrorPayload(msg string) []byte {
	type apiErr struct {
		ErrorCondition struct {
			Description string `json:"Description"`
		} `json:"ErrorCondition"`
	}
	var e apiErr
	e.ErrorCondition.Description = msg
	b, _ := json.Marshal(e)
	return b
}
