package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leapstack-labs/sqlsubstr/internal/testutil"
	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var strictRule = &substr.Rule{FunctionName: "substr"}

func TestTranslate_OrderedResults(t *testing.T) {
	inputs := []string{
		"SUBSTR(col_name, 1, 5)",
		"SUBSTR(col_name, -1, 5)",
		`SUBSTR("testtestcol_name", 1, 0)`,
		"SUBSTR(col_name, 1",
		"SUBSTR(other, 3)",
	}

	tr := &Translator{
		Rule:        strictRule,
		BufferSize:  1024,
		Concurrency: 2,
		Logger:      testutil.NewTestLogger(t),
	}
	run, err := tr.Translate(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, run.Results, len(inputs))
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.Failed)

	for i, res := range run.Results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, inputs[i], res.Input)
	}
	assert.Equal(t, "substr(col_name, 1, 5)", run.Results[0].Output)
	assert.True(t, errors.Is(run.Results[1].Err, substr.ErrNegativeStartNotAllowed))
	assert.Equal(t, `substr("testtestcol_name", 1)`, run.Results[2].Output)
	assert.Equal(t, substr.KindParensMismatch, substr.KindOf(run.Results[3].Err))
	assert.True(t, run.Results[4].OK())
	assert.Equal(t, "substr(other, 3)", run.Results[4].Output)
}

func TestTranslate_ManyItems(t *testing.T) {
	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("SUBSTR(c%d, %d, %d)", i, i+1, i%3)
	}

	tr := &Translator{Rule: strictRule, BufferSize: 64, Concurrency: 8}
	run, err := tr.Translate(context.Background(), inputs)
	require.NoError(t, err)
	assert.Zero(t, run.Failed)

	for i, res := range run.Results {
		want := fmt.Sprintf("substr(c%d, %d, %d)", i, i+1, i%3)
		if i%3 == 0 {
			want = fmt.Sprintf("substr(c%d, %d)", i, i+1)
		}
		assert.Equal(t, want, res.Output)
	}
}

func TestTranslate_SmallBufferPerItem(t *testing.T) {
	tr := &Translator{Rule: strictRule, BufferSize: 16}
	run, err := tr.Translate(context.Background(), []string{
		"SUBSTR(c, 1)",
		"SUBSTR(a_rather_long_column, 1, 2)",
	})
	require.NoError(t, err)

	assert.Equal(t, "substr(c, 1)", run.Results[0].Output)
	assert.True(t, errors.Is(run.Results[1].Err, substr.ErrOutputBufferTooShort))
	assert.Equal(t, 1, run.Failed)
}

func TestTranslate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := &Translator{Rule: strictRule, BufferSize: 64}
	run, err := tr.Translate(ctx, []string{"SUBSTR(a, 1)", "SUBSTR(b, 2)"})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, run)

	assert.Equal(t, 2, run.Failed)
	for _, res := range run.Results {
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestTranslate_InvalidTranslator(t *testing.T) {
	_, err := (&Translator{BufferSize: 10}).Translate(context.Background(), nil)
	assert.True(t, errors.Is(err, substr.ErrNullInput))

	_, err = (&Translator{Rule: strictRule}).Translate(context.Background(), nil)
	assert.Error(t, err)
}

func TestTranslate_Empty(t *testing.T) {
	run, err := (&Translator{Rule: strictRule, BufferSize: 10}).Translate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, run.Results)
	assert.Zero(t, run.Failed)
}

func TestReadInputs(t *testing.T) {
	in := `
-- daily extracts
SUBSTR(col_name, 1, 5)

   SUBSTR("a, b", 2)
--SUBSTR(skipped, 1)
`
	got, err := ReadInputs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"SUBSTR(col_name, 1, 5)", `SUBSTR("a, b", 2)`}, got)

	got, err = ReadInputs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranslate_LogsRunID(t *testing.T) {
	logger, logs := testutil.NewBufferLogger()

	tr := &Translator{Rule: strictRule, BufferSize: 64, Logger: logger}
	run, err := tr.Translate(context.Background(), []string{"SUBSTR(a, 1)", "SUBSTR(a, -1)"})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "batch started")
	assert.Contains(t, out, "batch finished")
	assert.Contains(t, out, "run_id="+run.ID)
	assert.Contains(t, out, "failed=1")
}
