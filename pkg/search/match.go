package search

import (
	"strings"

	"adminsearch-be/internal/entity"
)

const DefaultLimit = 10

// Match scans users, transactions, withdrawals and content, in that order,
// and returns at most limit results. Truncation happens after every category
// has been scanned, so earlier categories can crowd out later ones.
// A limit <= 0 means DefaultLimit.
func Match(source Source, query string, limit int) []Result {
	if strings.TrimSpace(query) == "" {
		return []Result{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := strings.ToLower(query)
	results := make([]Result, 0, limit)

	for _, u := range source.Users() {
		if matchUser(u, q) {
			results = append(results, UserResult{User: u})
		}
	}
	for _, t := range source.Transactions() {
		if matchTransaction(t, q) {
			results = append(results, TransactionResult{Transaction: t})
		}
	}
	for _, w := range source.Withdrawals() {
		if matchWithdrawal(w, q) {
			results = append(results, WithdrawalResult{Withdrawal: w})
		}
	}
	for _, c := range source.Contents() {
		if matchContent(c, q) {
			results = append(results, ContentResult{Content: c})
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// q is already lowercased.
func containsFold(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}

// Phone numbers hold no letters, so they are compared as-is.
func containsLiteral(field, q string) bool {
	return strings.Contains(field, q)
}

func matchUser(u entity.User, q string) bool {
	return containsFold(u.Name, q) ||
		containsFold(u.Email, q) ||
		containsLiteral(u.Phone, q)
}

func matchTransaction(t entity.Transaction, q string) bool {
	return containsFold(t.User, q) ||
		containsFold(t.Type, q) ||
		containsFold(t.Id, q)
}

func matchWithdrawal(w entity.Withdrawal, q string) bool {
	return containsFold(w.User, q) ||
		containsFold(string(w.Status), q) ||
		containsLiteral(w.Phone, q)
}

func matchContent(c entity.Content, q string) bool {
	return containsFold(c.Title, q) ||
		containsFold(c.Creator, q) ||
		containsFold(c.Category, q) ||
		containsFold(string(c.Status), q)
}
