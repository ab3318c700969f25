package api

// AnalysisResult is the backend's classification of a single submission.
// Each response replaces the previous result entirely; the client keeps it
// only in memory, the backend is the durable record.
type AnalysisResult struct {
	Emotion       string  `json:"emotion"`
	Score         float64 `json:"score"`
	Insight       string  `json:"insight"`
	HistoryCount  int     `json:"history_count"`
	IsAudio       bool    `json:"is_audio"`
	Transcription string  `json:"transcription"`
}

// HistoryEntry is one prior journal entry as the backend reports it.
// Server-returned order is kept (ascending by date).
type HistoryEntry struct {
	Date    string `json:"date"`
	Emotion string `json:"emotion"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}
