package query

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/crebase/listing-finder/pkg/sorting"
	"github.com/crebase/listing-finder/pkg/types"
)

// SearchRequest is one decoded search submission: the reconstructed filter
// state, the sort selection and the routing pass-through parameters that
// pick the section context.
type SearchRequest struct {
	Filters  types.FilterValues `json:"filters" schema:"-"`
	Sort     sorting.SortKey    `json:"sort" schema:"sort"`
	Page     int                `json:"page" schema:"page"`
	PageSize int                `json:"pageSize" schema:"size,default:40"`

	// Routing pass-through, kept verbatim.
	Type        string `json:"type,omitempty" schema:"type"`
	Category    string `json:"category,omitempty" schema:"category"`
	ListingType string `json:"listing_type,omitempty" schema:"listing_type"`
	Status      string `json:"status,omitempty" schema:"status"`
}

func makeBaseSearchRequest() *SearchRequest {
	return &SearchRequest{
		Filters:  types.DefaultFilterValues(),
		Sort:     sorting.Newest,
		Page:     0,
		PageSize: 40,
	}
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (s *SearchRequest) Sanitize() {
	s.Page = clamp(s.Page, 0, 1000)
	s.PageSize = clamp(s.PageSize, 1, 200)
	if !s.Sort.IsValid() {
		s.Sort = sorting.Newest
	}
}

// Context derives the sort section from the routing pass-through params.
func (s *SearchRequest) Context() sorting.Context {
	return sorting.ContextFrom(s.Category, s.ListingType)
}

// FromRequest decodes a search submission: query parameters on GET, a JSON
// body otherwise.
func FromRequest(r *http.Request) (*SearchRequest, error) {
	sr := makeBaseSearchRequest()
	var err error
	if r.Method == http.MethodGet {
		err = fromQuery(r.URL.Query(), sr)
	} else {
		err = json.NewDecoder(r.Body).Decode(sr)
	}
	sr.Sanitize()
	return sr, err
}

func fromQuery(params url.Values, sr *SearchRequest) error {
	if err := decoder.Decode(sr, params); err != nil {
		return err
	}
	sr.Filters = Decode(params)
	return nil
}
