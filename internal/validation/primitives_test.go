package validation

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/northstar/internal/model"
)

// ============================================================================
// NonEmptyTrimmed / OptionalTrimmed
// ============================================================================

func TestNonEmptyTrimmed(t *testing.T) {
	t.Parallel()

	got, ferr := NonEmptyTrimmed("Title", "  Run  ", 10)
	require.Nil(t, ferr)
	assert.Equal(t, "Run", got)

	_, ferr = NonEmptyTrimmed("Title", "   ", 10)
	require.NotNil(t, ferr)
	assert.Equal(t, KindEmpty, ferr.Kind)
	assert.Equal(t, "Title can't be empty", ferr.Message)

	_, ferr = NonEmptyTrimmed("Title", nil, 10)
	require.NotNil(t, ferr)
	assert.Equal(t, KindRequired, ferr.Kind)

	_, ferr = NonEmptyTrimmed("Title", 42, 10)
	require.NotNil(t, ferr)
	assert.Equal(t, KindType, ferr.Kind)
	assert.Equal(t, "Title must be text", ferr.Message)
}

func TestNonEmptyTrimmed_LengthCountsCodePoints(t *testing.T) {
	t.Parallel()

	exact := strings.Repeat("é", 5)
	got, ferr := NonEmptyTrimmed("Name", exact, 5)
	require.Nil(t, ferr)
	assert.Equal(t, exact, got)

	_, ferr = NonEmptyTrimmed("Name", exact+"é", 5)
	require.NotNil(t, ferr)
	assert.Equal(t, KindTooLong, ferr.Kind)
	assert.Equal(t, "Name must be 5 characters or less", ferr.Message)
}

func TestOptionalTrimmed(t *testing.T) {
	t.Parallel()

	got, ferr := OptionalTrimmed("Vision", nil, 10, true)
	assert.Nil(t, ferr)
	assert.Nil(t, got)

	got, ferr = OptionalTrimmed("Vision", "   ", 10, true)
	assert.Nil(t, ferr)
	assert.Nil(t, got)

	_, ferr = OptionalTrimmed("Description", "   ", 10, false)
	require.NotNil(t, ferr)
	assert.Equal(t, "Description can't be empty", ferr.Message)

	got, ferr = OptionalTrimmed("Vision", " fit ", 10, true)
	require.Nil(t, ferr)
	require.NotNil(t, got)
	assert.Equal(t, "fit", *got)

	_, ferr = OptionalTrimmed("Vision", strings.Repeat("a", 11), 10, true)
	require.NotNil(t, ferr)
	assert.Equal(t, KindTooLong, ferr.Kind)
}

// ============================================================================
// HexColor / UUID
// ============================================================================

func TestHexColor(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"#4F46E5", "#4f46e5", " #000000 "} {
		got, ferr := HexColor(ok)
		require.Nil(t, ferr, ok)
		assert.Equal(t, strings.TrimSpace(ok), *got)
	}
	for _, bad := range []any{"4F46E5", "#4F46E", "#4F46E5F", "#GGGGGG", "", 7} {
		_, ferr := HexColor(bad)
		require.NotNil(t, ferr, "%v", bad)
		assert.Equal(t, model.MsgColor, ferr.Message)
	}

	got, ferr := HexColor(nil)
	assert.Nil(t, ferr)
	assert.Nil(t, got)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	valid := []string{
		"3f2504e0-4f89-41d3-9a0c-0305e82c3301",
		"3F2504E0-4F89-41D3-9A0C-0305E82C3301",
		"  3f2504e0-4f89-41d3-bfff-0305e82c3301 ",
	}
	for _, s := range valid {
		got, ferr := UUID("Goal ID", s)
		require.Nil(t, ferr, s)
		assert.Equal(t, strings.TrimSpace(s), got)
	}

	invalid := []any{
		"3f2504e0-4f89-11d3-9a0c-0305e82c3301",       // version 1
		"3f2504e0-4f89-41d3-7a0c-0305e82c3301",       // NCS variant
		"3f2504e04f8941d39a0c0305e82c3301",           // no hyphens
		"{3f2504e0-4f89-41d3-9a0c-0305e82c3301}",     // braces
		"urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301",
		"not-a-uuid",
		"",
		nil,
		12,
	}
	for _, v := range invalid {
		_, ferr := UUID("Goal ID", v)
		require.NotNil(t, ferr, "%v", v)
		assert.Equal(t, "Goal ID must be a valid UUID", ferr.Message)
	}
}

// ============================================================================
// BoundedStepNumber
// ============================================================================

func TestBoundedStepNumber(t *testing.T) {
	t.Parallel()

	for _, v := range []any{0.0, 0.25, 7.5, 14.0, 3, json.Number("13.75")} {
		_, ferr := BoundedStepNumber("Value", v, 0, 14, 0.25)
		assert.Nil(t, ferr, "%v", v)
	}

	tests := []struct {
		value any
		kind  ErrorKind
	}{
		{-0.25, KindRange},
		{14.25, KindRange},
		{7.3, KindStep},
		{0.1, KindStep},
		{math.NaN(), KindType},
		{math.Inf(1), KindType},
		{"7", KindType},
		{true, KindType},
		{nil, KindType},
	}
	for _, tt := range tests {
		_, ferr := BoundedStepNumber("Value", tt.value, 0, 14, 0.25)
		require.NotNil(t, ferr, "%v", tt.value)
		assert.Equal(t, tt.kind, ferr.Kind, "%v", tt.value)
	}
}

func TestBoundedStepNumber_NoFloatModuloFalseNegatives(t *testing.T) {
	t.Parallel()

	// 0.1 + 0.2 is not exactly 0.3; the grid check must still accept it.
	_, ferr := BoundedStepNumber("Value", 0.1+0.2, 0, 1, 0.1)
	assert.Nil(t, ferr)
}

// ============================================================================
// EnumMember
// ============================================================================

func TestEnumMember(t *testing.T) {
	t.Parallel()

	got, ferr := EnumMember("Horizon", "WEEK", model.Horizons)
	require.Nil(t, ferr)
	assert.Equal(t, model.HorizonWeek, got)

	want := "Horizon must be one of: YEAR, SIX_MONTH, MONTH, WEEK"
	for _, bad := range []any{nil, "", "week", " WEEK", 1} {
		_, ferr := EnumMember("Horizon", bad, model.Horizons)
		require.NotNil(t, ferr, "%v", bad)
		assert.Equal(t, want, ferr.Message)
	}
}

// ============================================================================
// ParseInput
// ============================================================================

func TestParseInput(t *testing.T) {
	t.Parallel()

	in, err := ParseInput([]byte(`{"value": 7.25, "order": 3}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("7.25"), in["value"])

	_, err = ParseInput([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = ParseInput([]byte(`{`))
	assert.Error(t, err)
}
