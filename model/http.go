package model

type AnalyzeResponse struct {
	Chords []ChordAnalysis `json:"chords"`
}

type ShapesResponse struct {
	Shapes []CatalogEntry `json:"shapes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
