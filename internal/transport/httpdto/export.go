package httpdto

type ExportRequest struct {
	Format     string   `json:"format"`
	ArtworkIDs []string `json:"artworkIds"`
	Status     string   `json:"status"`
}

type ExportResponse struct {
	Type     string `json:"type"`
	Data     string `json:"data"`
	Filename string `json:"filename"`
}
