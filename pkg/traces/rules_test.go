package traces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferMethod(t *testing.T) {
	tests := []struct {
		endpoint string
		expected string
	}{
		{"list-items", "GET"},
		{"/api/v1/items/get", "GET"},
		{"search-vaults", "GET"},
		{"verify-mfa", "GET"},
		{"activity-log", "GET"},
		{"update-vault", "PUT"},
		{"delete-session", "DELETE"},
		{"create-share", "POST"},
		{"unlock", "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferMethod(tt.endpoint))
		})
	}
}

func TestInferMethod_FirstRuleWins(t *testing.T) {
	// "get" appears before "update" in the rule table, so a name containing
	// both resolves to GET.
	assert.Equal(t, "GET", inferMethod("get-then-update"))
}

func TestEstimateSpans(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		durationMs int64
		expected   int
	}{
		{"create tier", "create-vault", 90, 11},  // 8 + 90/30
		{"share tier", "share-item", 60, 10},     // 8 + 60/30
		{"update tier", "update-vault", 80, 9},   // 7 + 80/40
		{"default tier", "list-items", 100, 6},   // 4 + 100/50
		{"default low", "delete-session", 10, 4}, // 4 + 10/50
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimateSpans(tt.endpoint, tt.durationMs))
		})
	}
}

func TestTraceID_Stable(t *testing.T) {
	first := traceID("/api/v1/items/get", 120)
	second := traceID("/api/v1/items/get", 120)

	assert.Equal(t, first, second)
	assert.Len(t, first, 32)
	assert.NotEqual(t, first, traceID("/api/v1/items/get", 121))
	assert.NotEqual(t, first, traceID("/api/v1/items/list", 120))
}
