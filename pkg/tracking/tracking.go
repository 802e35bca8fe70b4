package tracking

import "github.com/crebase/listing-finder/pkg/types"

// Tracking receives the user facing search events. Implementations must
// tolerate being nil checked by callers; tracking is always optional.
type Tracking interface {
	TrackSearch(sessionId string, filters types.FilterValues, sortKey string) error
	TrackFilterSaved(sessionId string, id string, name string) error
	TrackFilterDeleted(sessionId string, id string) error
	Close() error
}
