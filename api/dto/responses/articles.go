// ABOUTME: Response shapes for the articles and collect endpoints
// ABOUTME: Mirrors the JSON contract the monitoring front-end consumes

package responses

// Article is the wire representation of one normalized item.
type Article struct {
	Service     string `json:"service"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

// CollectResponse reports the outcome of a forced snapshot refresh.
type CollectResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ServicesResponse lists the registered source tags.
type ServicesResponse struct {
	Services []string `json:"services"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
