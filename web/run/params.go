package webapp

import (
	"net/http"
	"strconv"

	"github.com/AEMWks/fotodiario/models"
)

func getIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func getInt64Ptr(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func getIntPtr(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// mediaTypeParam normalizes the ?type= filter; anything unrecognized
// counts as "all".
func mediaTypeParam(r *http.Request) models.MediaType {
	switch r.URL.Query().Get("type") {
	case "photo":
		return models.TypePhoto
	case "video":
		return models.TypeVideo
	default:
		return models.TypeAll
	}
}

func sortOrderParam(r *http.Request, name string, def models.SortOrder) models.SortOrder {
	switch r.URL.Query().Get(name) {
	case "asc":
		return models.SortAsc
	case "desc":
		return models.SortDesc
	default:
		return def
	}
}

func sortKeyParam(r *http.Request, def models.SortKey) models.SortKey {
	switch r.URL.Query().Get("sort_by") {
	case "date":
		return models.SortByDate
	case "time":
		return models.SortByTime
	case "size":
		return models.SortBySize
	case "filename":
		return models.SortByFilename
	default:
		return def
	}
}
