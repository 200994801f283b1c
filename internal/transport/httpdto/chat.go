package httpdto

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	ArtworkID string     `json:"artworkId"`
	Message   string     `json:"message"`
	History   []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
