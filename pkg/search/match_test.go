package search_test

import (
	"fmt"
	"strings"
	"testing"

	"adminsearch-be/internal/entity"
	"adminsearch-be/internal/repository/memory"
	"adminsearch-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldsContain reports whether any searchable field of the result's record
// contains q, using the same folding rules as the matcher.
func fieldsContain(t *testing.T, r search.Result, q string) bool {
	t.Helper()
	lq := strings.ToLower(q)
	fold := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), lq) {
				return true
			}
		}
		return false
	}

	switch v := r.(type) {
	case search.UserResult:
		return fold(v.User.Name, v.User.Email) || strings.Contains(v.User.Phone, lq)
	case search.TransactionResult:
		return fold(v.Transaction.User, v.Transaction.Type, v.Transaction.Id)
	case search.WithdrawalResult:
		return fold(v.Withdrawal.User, string(v.Withdrawal.Status)) || strings.Contains(v.Withdrawal.Phone, lq)
	case search.ContentResult:
		return fold(v.Content.Title, v.Content.Creator, v.Content.Category, string(v.Content.Status))
	default:
		t.Fatalf("unexpected result type %T", r)
		return false
	}
}

func TestMatchBlankQuery(t *testing.T) {
	src := memory.NewSampleRecordSource()

	for _, q := range []string{"", " ", "\t", "  \n "} {
		assert.Empty(t, search.Match(src, q, search.DefaultLimit), "query %q", q)
	}
}

func TestMatchEveryResultContainsQuery(t *testing.T) {
	src := memory.NewSampleRecordSource()
	queries := []string{"a", "e", "RAHUL", "pat", "98765", "+91", "pending", "txn", "game", "review", "Creator", "@example", "-"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			results := search.Match(src, q, search.DefaultLimit)
			assert.LessOrEqual(t, len(results), search.DefaultLimit)
			for _, r := range results {
				assert.True(t, fieldsContain(t, r, q), "%s %s does not contain %q", r.Type(), r.ID(), q)
			}
		})
	}
}

func TestMatchNoHit(t *testing.T) {
	src := memory.NewSampleRecordSource()
	assert.Empty(t, search.Match(src, "zzzz-not-there", search.DefaultLimit))
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	src := memory.NewSampleRecordSource()

	lower := search.Match(src, "priya", search.DefaultLimit)
	upper := search.Match(src, "PRIYA", search.DefaultLimit)
	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}

func TestMatchIsIdempotent(t *testing.T) {
	src := memory.NewSampleRecordSource()

	for _, q := range []string{"a", "rahul", "flagged", ""} {
		assert.Equal(t, search.Match(src, q, search.DefaultLimit), search.Match(src, q, search.DefaultLimit))
	}
}

func TestMatchPhoneIsLiteral(t *testing.T) {
	src := memory.NewSampleRecordSource()

	results := search.Match(src, "98765 43210", search.DefaultLimit)
	require.Len(t, results, 2)
	assert.Equal(t, search.ResultTypeUser, results[0].Type())
	assert.Equal(t, "user-1", results[0].ID())
	assert.Equal(t, search.ResultTypeWithdrawal, results[1].Type())
	assert.Equal(t, "wd-1", results[1].ID())
}

// crowdedSource has more "test" matches than the limit, spread over every
// category.
func crowdedSource() *memory.RecordSource {
	var users []entity.User
	for i := 1; i <= 7; i++ {
		users = append(users, entity.User{Id: fmt.Sprintf("user-%d", i), Name: fmt.Sprintf("Test User %d", i)})
	}
	users = append(users, entity.User{Id: "user-x", Name: "Somebody Else"})

	var txs []entity.Transaction
	for i := 1; i <= 5; i++ {
		txs = append(txs, entity.Transaction{Id: fmt.Sprintf("txn-%d", i), User: "Test Payer", Type: "Top-up"})
	}

	withdrawals := []entity.Withdrawal{{Id: "wd-1", User: "Test Withdrawer", Status: entity.WithdrawalStatusPending}}
	contents := []entity.Content{{Id: "content-1", Title: "Test Video", Status: entity.ContentStatusApproved}}

	return memory.NewRecordSource(users, txs, withdrawals, contents)
}

func TestMatchCategoryPrecedence(t *testing.T) {
	results := search.Match(crowdedSource(), "test", search.DefaultLimit)
	require.Len(t, results, 10)

	for i := 0; i < 7; i++ {
		assert.Equal(t, search.ResultTypeUser, results[i].Type())
		assert.Equal(t, fmt.Sprintf("user-%d", i+1), results[i].ID())
	}
	for i := 7; i < 10; i++ {
		assert.Equal(t, search.ResultTypeTransaction, results[i].Type())
		assert.Equal(t, fmt.Sprintf("txn-%d", i-6), results[i].ID())
	}
}

func TestMatchLimit(t *testing.T) {
	src := crowdedSource()

	assert.Len(t, search.Match(src, "test", 3), 3)
	assert.Len(t, search.Match(src, "test", 0), search.DefaultLimit)
	assert.Len(t, search.Match(src, "test", 100), 14)
}

func TestScenarioRahul(t *testing.T) {
	results := search.Match(memory.NewSampleRecordSource(), "rahul", search.DefaultLimit)
	require.Len(t, results, 3)

	user, ok := results[0].(search.UserResult)
	require.True(t, ok)
	assert.Equal(t, "Rahul Sharma", user.Title())
	assert.Contains(t, user.Description(), "Consumer")
	assert.Contains(t, user.Description(), "rahul@example.com")
	assert.Equal(t, entity.UserStatusActive, user.User.Status)

	tx, ok := results[1].(search.TransactionResult)
	require.True(t, ok)
	assert.Equal(t, "Game Win - Rahul Sharma", tx.Title())

	wd, ok := results[2].(search.WithdrawalResult)
	require.True(t, ok)
	assert.Equal(t, "Withdrawal - Rahul Sharma", wd.Title())
	assert.Equal(t, int64(2500), wd.Withdrawal.Amount)
}

func TestScenarioFlagged(t *testing.T) {
	results := search.Match(memory.NewSampleRecordSource(), "flagged", search.DefaultLimit)
	require.Len(t, results, 1)

	content, ok := results[0].(search.ContentResult)
	require.True(t, ok)
	assert.Equal(t, search.ResultTypeContent, content.Type())
	assert.Equal(t, "Tech Review", content.Title())
	assert.Equal(t, entity.ContentStatusFlagged, content.Content.Status)
}

func TestResultProjections(t *testing.T) {
	tests := []struct {
		result    search.Result
		wantType  search.ResultType
		wantTitle string
		wantDesc  string
	}{
		{
			result:    search.UserResult{User: entity.User{Id: "user-9", Name: "Asha", Email: "asha@example.com", Role: entity.UserRoleCreator}},
			wantType:  search.ResultTypeUser,
			wantTitle: "Asha",
			wantDesc:  "Creator • asha@example.com",
		},
		{
			result:    search.TransactionResult{Transaction: entity.Transaction{Id: "txn-9", User: "Asha", Type: "Top-up", Date: "2024-02-01"}},
			wantType:  search.ResultTypeTransaction,
			wantTitle: "Top-up - Asha",
			wantDesc:  "txn-9 • 2024-02-01",
		},
		{
			result:    search.WithdrawalResult{Withdrawal: entity.Withdrawal{Id: "wd-9", User: "Asha", Phone: "+91 1", Date: "2024-02-02"}},
			wantType:  search.ResultTypeWithdrawal,
			wantTitle: "Withdrawal - Asha",
			wantDesc:  "+91 1 • 2024-02-02",
		},
		{
			result:    search.ContentResult{Content: entity.Content{Id: "content-9", Title: "Vlog", Creator: "Asha", Views: 42}},
			wantType:  search.ResultTypeContent,
			wantTitle: "Vlog",
			wantDesc:  "by Asha • 42 views",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantType), func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.result.Type())
			assert.Equal(t, tt.wantTitle, tt.result.Title())
			assert.Equal(t, tt.wantDesc, tt.result.Description())
			assert.True(t, tt.result.Type().Valid())
		})
	}

	assert.False(t, search.ResultType("campaign").Valid())
}
