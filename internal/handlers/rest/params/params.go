// Package params parses the query parameters shared by the list endpoints.
package params

import (
	"net/http"
	"strconv"
)

// Page reads the "page" query parameter. Missing or malformed values fall
// back to the first page.
func Page(r *http.Request) int64 {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Search reads the "q" name filter.
func Search(r *http.Request) string {
	return r.URL.Query().Get("q")
}
