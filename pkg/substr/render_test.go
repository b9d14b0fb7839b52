package substr

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitCount(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 99, 100, -1, -9, -10, 12345, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, len(strconv.FormatInt(n, 10)), digitCount(n), "n=%d", n)
	}
}

func TestRenderTo(t *testing.T) {
	tests := []struct {
		name     string
		rec      CallRecord
		expected string
	}{
		{
			name:     "with length",
			rec:      CallRecord{FuncName: "substr", Argument: "col_name", Start: -1, Length: 5},
			expected: "substr(col_name, -1, 5)",
		},
		{
			name:     "without length",
			rec:      CallRecord{FuncName: "substring", Argument: "col", Start: 1},
			expected: "substring(col, 1)",
		},
		{
			name:     "zero start",
			rec:      CallRecord{FuncName: "substr", Argument: "c", Start: 0, Length: 10},
			expected: "substr(c, 0, 10)",
		},
		{
			name:     "literal kept verbatim",
			rec:      CallRecord{FuncName: "substr", Argument: `"a, (b)"`, Start: 3},
			expected: `substr("a, (b)", 3)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 64)
			n, err := RenderTo(buf, &tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(buf[:n]))
			assert.Equal(t, len(tt.expected), n)
			assert.Equal(t, n, RequiredLen(&tt.rec))
		})
	}
}

func TestRenderTo_Capacity(t *testing.T) {
	rec := &CallRecord{FuncName: "substr", Argument: "col", Start: 12, Length: 3}
	const want = "substr(col, 12, 3)"
	required := len(want)

	// Exactly the text length leaves no room for the terminator.
	_, err := RenderTo(make([]byte, required), rec)
	assert.ErrorIs(t, err, ErrOutputBufferTooShort)

	_, err = RenderTo(make([]byte, required-5), rec)
	assert.ErrorIs(t, err, ErrOutputBufferTooShort)

	buf := make([]byte, required+1)
	n, err := RenderTo(buf, rec)
	require.NoError(t, err)
	assert.Equal(t, want, string(buf[:n]))
}

func TestRenderTo_CapacityWithoutLength(t *testing.T) {
	tests := []struct {
		name string
		rec  CallRecord
		want string
	}{
		{"positive start", CallRecord{FuncName: "substr", Argument: "col", Start: 7}, "substr(col, 7)"},
		{"negative start", CallRecord{FuncName: "substr", Argument: "col", Start: -12}, "substr(col, -12)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			required := RequiredLen(&tt.rec)
			assert.Equal(t, len(tt.want), required)

			_, err := RenderTo(make([]byte, required), &tt.rec)
			assert.ErrorIs(t, err, ErrOutputBufferTooShort)

			buf := make([]byte, required+1)
			n, err := RenderTo(buf, &tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestRenderTo_CapacityMonotonic(t *testing.T) {
	rec := &CallRecord{FuncName: "substring", Argument: `"hello, world"`, Start: -7, Length: 120}

	minimal := RequiredLen(rec) + 1
	base, err := Render(rec, minimal)
	require.NoError(t, err)

	for c := minimal + 1; c < minimal+64; c++ {
		got, err := Render(rec, c)
		require.NoError(t, err, "capacity %d", c)
		assert.Equal(t, base, got, "capacity %d", c)
	}
}

func TestRenderTo_NegativeStartWithoutRule(t *testing.T) {
	out, err := Render(&CallRecord{FuncName: "substr", Argument: "col", Start: -3}, 32)
	require.NoError(t, err)
	assert.Equal(t, "substr(col, -3)", out)
}

func TestRenderTo_NullInput(t *testing.T) {
	_, err := RenderTo(nil, &CallRecord{FuncName: "f", Argument: "a", Start: 1})
	assert.Equal(t, KindNullInput, KindOf(err))

	_, err = RenderTo(make([]byte, 16), nil)
	assert.Equal(t, KindNullInput, KindOf(err))

	_, err = Render(&CallRecord{FuncName: "f", Argument: "a", Start: 1}, 0)
	assert.Equal(t, KindNullInput, KindOf(err))
}
