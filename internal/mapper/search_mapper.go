package mapper

import (
	"adminsearch-be/internal/dto"
	"adminsearch-be/pkg/search"
)

func ToSearchResultResponse(r search.Result) dto.SearchResultResponse {
	res := dto.SearchResultResponse{
		Id:          r.ID(),
		Type:        string(r.Type()),
		Title:       r.Title(),
		Description: r.Description(),
	}

	switch v := r.(type) {
	case search.UserResult:
		res.Status = string(v.User.Status)
	case search.TransactionResult:
		amount := v.Transaction.Amount
		res.Status = v.Transaction.Status
		res.Amount = &amount
		res.Date = v.Transaction.Date
	case search.WithdrawalResult:
		amount := v.Withdrawal.Amount
		res.Status = string(v.Withdrawal.Status)
		res.Amount = &amount
		res.Date = v.Withdrawal.Date
	case search.ContentResult:
		res.Status = string(v.Content.Status)
		res.Category = v.Content.Category
	}

	return res
}

func ToSearchResultResponses(results []search.Result) []dto.SearchResultResponse {
	res := make([]dto.SearchResultResponse, 0, len(results))
	for _, r := range results {
		res = append(res, ToSearchResultResponse(r))
	}
	return res
}

func ToSearchStateResponse(sessionID string, state search.State, results []search.Result) dto.SearchStateResponse {
	return dto.SearchStateResponse{
		SessionId:   sessionID,
		Query:       state.Query,
		IsSearching: state.IsSearching,
		ShowResults: state.ShowResults,
		Results:     ToSearchResultResponses(results),
	}
}
