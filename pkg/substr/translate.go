package substr

import "math"

// Translate adapts a parsed call to the target rule and returns a new record.
// The input record is left untouched.
func Translate(rule *Rule, in *CallRecord) (*CallRecord, error) {
	if rule == nil || in == nil {
		return nil, newError(KindNullInput, "translate requires a rule and a record")
	}

	if in.Start < 0 && !rule.AllowNegativeStart {
		return nil, newError(KindNegativeStartNotAllowed,
			"start position %d is not allowed by %s", in.Start, rule.FunctionName)
	}

	shift := rule.StartShift
	if (shift > 0 && in.Start > math.MaxInt64-shift) || (shift < 0 && in.Start < math.MinInt64-shift) {
		return nil, newError(KindWrongStartPosition,
			"start position %d shifted by %d overflows", in.Start, shift)
	}

	return &CallRecord{
		FuncName: rule.FunctionName,
		Argument: in.Argument,
		Start:    in.Start + shift,
		Length:   in.Length,
	}, nil
}
