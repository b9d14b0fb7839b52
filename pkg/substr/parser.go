package substr

import (
	"errors"
	"strconv"
	"strings"
)

const quote = '"'

// isDelim reports whether c separates the numeric arguments of a call.
func isDelim(c rune) bool {
	switch c {
	case ' ', ',', '(', ')':
		return true
	}
	return false
}

// Parse turns a substring call such as `SUBSTR(col, -3, 5)` or
// `SUBSTR("some text", 1)` into a CallRecord.
//
// The input is never modified. Spaces around a bare column name are trimmed;
// a quoted literal is kept verbatim, quotes included. A negative length is clamped to 0; a negative
// start is accepted here and only checked by Translate.
func Parse(input string) (*CallRecord, error) {
	lp := strings.IndexByte(input, '(')
	rp := strings.LastIndexByte(input, ')')
	if lp < 0 || rp < 0 || lp >= rp {
		return nil, newError(KindParensMismatch, "no matching parentheses in %q", input)
	}

	arg, comma, err := scanArgument(input, lp, rp)
	if err != nil {
		return nil, err
	}

	// Numeric arguments follow the delimiting comma. Anything after the
	// length token is ignored.
	fields := strings.FieldsFunc(input[comma:], isDelim)
	if len(fields) == 0 {
		return nil, newError(KindWrongStartPosition, "missing start position")
	}

	start, err := parseInt(fields[0])
	if err != nil {
		return nil, newError(KindWrongStartPosition, "%q: %v", fields[0], err)
	}

	var length int64
	if len(fields) > 1 {
		length, err = parseInt(fields[1])
		if err != nil {
			return nil, newError(KindWrongLength, "%q: %v", fields[1], err)
		}
	}
	if length < 0 {
		length = 0
	}

	return &CallRecord{
		FuncName: strings.TrimSpace(input[:lp]),
		Argument: arg,
		Start:    start,
		Length:   length,
	}, nil
}

// scanArgument extracts the first call argument from input, where lp and rp
// are the offsets of the outer parentheses. It returns the argument and the
// offset of the comma that ends it.
func scanArgument(input string, lp, rp int) (string, int, error) {
	body := input[lp+1 : rp]

	lq := strings.IndexByte(body, quote)
	if lq < 0 {
		// Bare column name: everything up to the first comma.
		comma := strings.IndexByte(body, ',')
		if comma < 0 {
			return "", 0, newError(KindWrongColumnName, "missing ',' after column name")
		}
		name := strings.TrimSpace(body[:comma])
		if name == "" {
			return "", 0, newError(KindWrongColumnName, "empty column name")
		}
		return name, lp + 1 + comma, nil
	}

	rq := strings.LastIndexByte(body, quote)
	if rq == lq {
		return "", 0, newError(KindQuoteMismatch, "unterminated string literal at offset %d", lp+1+lq)
	}

	comma := strings.IndexByte(body[rq+1:], ',')
	if comma < 0 {
		return "", 0, newError(KindWrongColumnName, "missing ',' after string literal")
	}
	return body[lq : rq+1], lp + 1 + rq + 1 + comma, nil
}

// parseInt accepts a complete base-10 integer with an optional sign.
func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return n, nil
}
