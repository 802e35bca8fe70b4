package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/crebase/listing-finder/pkg/index"
	"github.com/crebase/listing-finder/pkg/savedsearch"
)

func testServer() *WebServer {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	listings := []index.NormalizedListing{
		{Listing: index.Listing{Id: 1, Price: 900_000, Created: base.Add(time.Hour)}},
		{Listing: index.Listing{Id: 2, Price: 3_000_000, Created: base.Add(2 * time.Hour)}},
		{Listing: index.Listing{Id: 3, Price: 1_500_000, Created: base.Add(3 * time.Hour)}},
	}
	return &WebServer{Listings: listings}
}

func TestSearchSortsAndPages(t *testing.T) {
	ws := testServer()
	mux := ws.CreateHandler()

	r := httptest.NewRequest(http.MethodGet, "/api/search?sort=price-high-to-low&size=2", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalHits != 3 {
		t.Errorf("Expected 3 total hits, got %d", resp.TotalHits)
	}
	if len(resp.Items) != 2 || resp.Items[0].Id != 2 || resp.Items[1].Id != 3 {
		t.Errorf("Expected first price page [2 3], got %v", resp.Items)
	}
	if len(resp.SortOptions) == 0 {
		t.Errorf("Expected sort options for the section context")
	}
}

func TestSearchDecodesFilterEcho(t *testing.T) {
	ws := testServer()
	mux := ws.CreateHandler()

	r := httptest.NewRequest(http.MethodGet, "/api/search?min_price=500000&opportunity_zone=1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Filters.Price.Min.Value != 500_000 {
		t.Errorf("Expected the decoded min price echoed back, got %+v", resp.Filters.Price)
	}
	if !resp.Filters.OpportunityZone {
		t.Errorf("Expected the opportunity zone flag echoed back")
	}
}

func TestSavedFilterLifecycleOverCookies(t *testing.T) {
	ws := testServer()
	mux := ws.CreateHandler()

	body := `{"name":"warehouses","duration":"90d","filters":{}}`
	r := httptest.NewRequest(http.MethodPost, "/api/saved-filters", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	id := created["id"]
	if id == "" {
		t.Fatalf("Expected an id in the save response")
	}

	// Carry the written cookies into the next request, as a browser would.
	listReq := httptest.NewRequest(http.MethodGet, "/api/saved-filters", nil)
	for _, c := range w.Result().Cookies() {
		if strings.HasPrefix(c.Name, savedsearch.KeyPrefix) {
			listReq.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	listRec := httptest.NewRecorder()
	mux.ServeHTTP(listRec, listReq)
	var entries []savedsearch.SavedFilter
	if err := json.Unmarshal(listRec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(entries) != 1 || entries[0].Id != id || entries[0].Name != "warehouses" {
		t.Errorf("Expected the saved entry listed, got %v", entries)
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/api/saved-filters/"+id, nil)
	delRec := httptest.NewRecorder()
	mux.ServeHTTP(delRec, delReq)
	if delRec.Code != http.StatusNoContent {
		t.Errorf("Expected 204 on delete, got %d", delRec.Code)
	}
}

func TestSavedFilterGetMissing(t *testing.T) {
	ws := testServer()
	mux := ws.CreateHandler()
	r := httptest.NewRequest(http.MethodGet, "/api/saved-filters/nope", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
