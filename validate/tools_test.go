package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightdesk/types"
)

func testDefinitions() []types.ToolDefinition {
	return []types.ToolDefinition{
		{
			Name: "track_flight",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"flight_number": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []string{"flight_number"},
				"additionalProperties": false,
			},
		},
		{
			Name: "get_current_time",
			Parameters: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
	}
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(testDefinitions())
	require.NoError(t, err)
	return v
}

func TestValidateArguments(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		tool    string
		args    string
		wantErr error
	}{
		{"valid", "track_flight", `{"flight_number":"AA123"}`, nil},
		{"no parameters", "get_current_time", `{}`, nil},
		{"missing required", "track_flight", `{}`, types.ErrInvalidToolArguments},
		{"wrong type", "track_flight", `{"flight_number":123}`, types.ErrInvalidToolArguments},
		{"empty string", "track_flight", `{"flight_number":""}`, types.ErrInvalidToolArguments},
		{"unexpected key", "track_flight", `{"flight_number":"AA1","extra":"x"}`, types.ErrInvalidToolArguments},
		{"malformed json", "track_flight", `{"flight_number":`, types.ErrInvalidToolArguments},
		{"not an object", "track_flight", `["AA123"]`, types.ErrInvalidToolArguments},
		{"unknown tool", "book_flight", `{}`, types.ErrUnknownTool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArguments(tt.tool, []byte(tt.args))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateArgumentsRejectsHiddenUnicode(t *testing.T) {
	v := newTestValidator(t)

	err := v.ValidateArguments("track_flight", []byte("{\"flight_number\":\"AA123\U000E0020\"}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidToolArguments))
	assert.Contains(t, err.Error(), "U+E0020")
}

func TestDetectHiddenUnicode(t *testing.T) {
	assert.Empty(t, DetectHiddenUnicode(`{"airport_code": "JFK"}`))

	found := DetectHiddenUnicode("Download file: \u202Eexe.live")
	require.Len(t, found, 1)
	assert.Equal(t, CategoryBidi, found[0].Category)
	assert.Equal(t, "U+202E", found[0].Hex)
	assert.Equal(t, 15, found[0].Index)

	found = DetectHiddenUnicode("a\u200Bb\U000E007F")
	require.Len(t, found, 2)
	assert.Equal(t, CategoryZeroWidth, found[0].Category)
	assert.Equal(t, CategoryTag, found[1].Category)
}
