package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "standard envelope",
			payload: `{"data":{"id":"x"},"status":200,"message":"ok"}`,
			want:    `{"id":"x"}`,
		},
		{
			name:    "bare array passes through",
			payload: `[{"id":"x"}]`,
			want:    `[{"id":"x"}]`,
		},
		{
			name:    "bare object without data passes through",
			payload: `{"id":"x"}`,
			want:    `{"id":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, string(unwrapEnvelope([]byte(tt.payload))))
		})
	}
}

func TestUnwrapKeyed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		keys    []string
		want    string
	}{
		{
			name:    "singular wrapper",
			payload: `{"listener":{"id":"l1"}}`,
			keys:    []string{"listener"},
			want:    `{"id":"l1"}`,
		},
		{
			name:    "plural wrapper",
			payload: `{"listeners":[{"id":"l1"},{"id":"l2"}]}`,
			keys:    []string{"listeners"},
			want:    `[{"id":"l1"},{"id":"l2"}]`,
		},
		{
			name:    "bare array untouched",
			payload: `[{"id":"l1"}]`,
			keys:    []string{"listeners"},
			want:    `[{"id":"l1"}]`,
		},
		{
			name:    "object without wrapper untouched",
			payload: `{"id":"l1"}`,
			keys:    []string{"listener"},
			want:    `{"id":"l1"}`,
		},
		{
			name:    "first matching key wins",
			payload: `{"admin":{"id":"a"},"profile":{"id":"p"}}`,
			keys:    []string{"profile", "admin"},
			want:    `{"id":"p"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, string(unwrapKeyed([]byte(tt.payload), tt.keys...)))
		})
	}
}

func TestServerMessage(t *testing.T) {
	assert.Equal(t, "nope", serverMessage([]byte(`{"status":400,"message":"nope"}`)))
	assert.Empty(t, serverMessage([]byte(`{"status":400}`)))
	assert.Empty(t, serverMessage([]byte(`not json`)))
}
