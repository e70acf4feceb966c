package rest

import "net/http"

type indexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET / with a short service description.
func Index(version string) http.HandlerFunc {
	body := indexResponse{
		Message: "English Vocabulary Database API",
		Version: version,
		Endpoints: map[string]string{
			"words":      "/api/words",
			"categories": "/api/categories",
			"study":      "/api/study",
			"stats":      "/api/stats",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	}
}
