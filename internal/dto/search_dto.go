package dto

// --- Search Widget ---

type SearchQueryRequest struct {
	Query string `json:"query"`
}

type SelectResultRequest struct {
	Id   string `json:"id" validate:"required"`
	Type string `json:"type" validate:"required,oneof=user transaction withdrawal content"`
}

// SearchResultResponse flattens one result. Status, amount, date and category
// are only set for the result types that have them.
type SearchResultResponse struct {
	Id          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Amount      *int64 `json:"amount,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
}

type SearchQueryResponse struct {
	Query   string                 `json:"query"`
	Count   int                    `json:"count"`
	Results []SearchResultResponse `json:"results"`
}

type SearchStateResponse struct {
	SessionId   string                 `json:"session_id"`
	Query       string                 `json:"query"`
	IsSearching bool                   `json:"is_searching"`
	ShowResults bool                   `json:"show_results"`
	Results     []SearchResultResponse `json:"results"`
}

type SelectResultResponse struct {
	Id         string `json:"id"`
	Type       string `json:"type"`
	Redirect   string `json:"redirect,omitempty"`
	Dispatched bool   `json:"dispatched"`
}

// ResultSelectedMessage is the payload on the in-process selection topic.
type ResultSelectedMessage struct {
	SessionId string               `json:"session_id"`
	Result    SearchResultResponse `json:"result"`
}
