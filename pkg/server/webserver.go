package server

import (
	"encoding/json"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/crebase/listing-finder/pkg/common"
	"github.com/crebase/listing-finder/pkg/index"
	"github.com/crebase/listing-finder/pkg/query"
	"github.com/crebase/listing-finder/pkg/savedsearch"
	"github.com/crebase/listing-finder/pkg/sorting"
	"github.com/crebase/listing-finder/pkg/tracking"
	"github.com/crebase/listing-finder/pkg/types"
)

// WebServer serves the search surface over an in-memory normalized
// listing set. Filtering semantics live upstream; this surface decodes,
// sorts and pages.
type WebServer struct {
	Listings []index.NormalizedListing
	Tracking tracking.Tracking

	// Redis switches the saved filter backend; nil keeps filters in
	// request cookies.
	Redis *redis.Client
}

// store picks the saved filter backend for one request.
func (ws *WebServer) store(w http.ResponseWriter, r *http.Request, sessionId string) savedsearch.Store {
	if ws.Redis != nil {
		return savedsearch.NewRedisStore(ws.Redis, sessionId)
	}
	return savedsearch.NewCookieStore(w, r)
}

type SearchResponse struct {
	Items       []index.NormalizedListing `json:"items"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"pageSize"`
	TotalHits   int                       `json:"totalHits"`
	Sort        sorting.SortKey           `json:"sort"`
	SortOptions []sorting.SortKey         `json:"sortOptions"`
	Filters     types.FilterValues        `json:"filters"`
}

func (ws *WebServer) Search(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	sr, err := query.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return err
	}
	noSearches.Inc()
	noSorts.WithLabelValues(string(sr.Sort)).Inc()
	if ws.Tracking != nil {
		go ws.Tracking.TrackSearch(sessionId, sr.Filters, string(sr.Sort))
	}

	sorted := sorting.Sort(ws.Listings, sr.Sort)
	page := paginate(sorted, sr.Page, sr.PageSize)

	common.JsonHeaders(w, r, "120")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(SearchResponse{
		Items:       page,
		Page:        sr.Page,
		PageSize:    sr.PageSize,
		TotalHits:   len(sorted),
		Sort:        sr.Sort,
		SortOptions: sorting.Options(sr.Context()),
		Filters:     sr.Filters,
	})
}

func paginate(listings []index.NormalizedListing, page, pageSize int) []index.NormalizedListing {
	start := page * pageSize
	if start >= len(listings) {
		return []index.NormalizedListing{}
	}
	end := min(start+pageSize, len(listings))
	return listings[start:end]
}

// CreateHandler wires the public routes.
func (ws *WebServer) CreateHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", common.JsonHandler(ws.Search))
	mux.HandleFunc("/api/saved-filters", common.JsonHandler(ws.SavedFilters))
	mux.HandleFunc("/api/saved-filters/", common.JsonHandler(ws.SavedFilterById))
	return mux
}
