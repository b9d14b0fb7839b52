package substr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := newError(KindWrongLength, "%q: bad", "x")

	assert.True(t, errors.Is(err, ErrWrongLength))
	assert.False(t, errors.Is(err, ErrWrongStartPosition))

	wrapped := fmt.Errorf("line 3: %w", err)
	assert.True(t, errors.Is(wrapped, ErrWrongLength))
	assert.Equal(t, KindWrongLength, KindOf(wrapped))
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "parens_mismatch", ErrParensMismatch.Error())
	assert.Equal(t, "wrong_length: oops", newError(KindWrongLength, "oops").Error())
}

func TestKindOf_Foreign(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
}

func TestKind_String(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Kinds() {
		s := k.String()
		assert.NotEqual(t, "unknown", s)
		assert.False(t, seen[s], "duplicate name %s", s)
		seen[s] = true
	}
	assert.Equal(t, "kind(99)", Kind(99).String())
}
