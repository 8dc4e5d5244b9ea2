package models

type ChatRequest struct {
	Query string `json:"query"`
}

// Narrative is the composed answer: an intro line, one block per candidate
// and a closing line.
type Narrative struct {
	Intro      string   `json:"intro"`
	Candidates []string `json:"candidates"`
	Closing    string   `json:"closing"`
}

type ChatResponse struct {
	Response *Narrative `json:"response"`
}

type SearchResponse struct {
	Results []Employee `json:"results"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	CorpusSize int    `json:"corpus_size"`
	Encoder    string `json:"encoder"`
	Index      string `json:"index"`
}
