package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/feed"
)

// ViewerHeader carries the authenticated caller's ID. Identity
// resolution belongs to the edge proxy; this service trusts the header
// and treats its absence as an anonymous request.
const ViewerHeader = "X-Viewer-Id"

// viewerID parses the viewer header. An absent header is a valid
// anonymous viewer (uuid.Nil); a present but malformed one is an error.
func viewerID(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(ViewerHeader)
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

// actorID parses the viewer header for endpoints that mutate state,
// where an anonymous caller is not acceptable.
func actorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := viewerID(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_viewer_id", "X-Viewer-Id must be a valid UUID")
		return uuid.Nil, false
	}
	if id == uuid.Nil {
		Error(w, http.StatusUnauthorized, "viewer_required", "X-Viewer-Id header is required")
		return uuid.Nil, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_"+name, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// pageFromQuery reads page and page_size. Out-of-range values are
// clamped downstream rather than rejected, so parse failures simply
// fall back to zero.
func pageFromQuery(r *http.Request) feed.Page {
	var p feed.Page
	p.Number, _ = strconv.Atoi(r.URL.Query().Get("page"))
	p.Size, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	return p
}

// sortFromQuery reads the sort parameter. An empty value stays empty;
// the feed service applies its default. Unknown values are passed
// through and rejected there.
func sortFromQuery(r *http.Request) feed.Sort {
	return feed.Sort(r.URL.Query().Get("sort"))
}
