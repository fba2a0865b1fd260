package model

// Pagination is the server's pagination block. The server is the source of
// truth for these counters; clients copy them verbatim.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	Limit       int `json:"limit"`
}
