package substr

import "strconv"

// digitCount returns the number of bytes n occupies in base 10, sign included.
func digitCount(n int64) int {
	count := 1
	if n < 0 {
		count++
	}
	// Work on the negative side so MinInt64 does not overflow.
	if n > 0 {
		n = -n
	}
	for n <= -10 {
		n /= 10
		count++
	}
	return count
}

// RequiredLen returns the exact number of bytes RenderTo writes for rec.
func RequiredLen(rec *CallRecord) int {
	n := len(rec.FuncName) + 1 + len(rec.Argument) + 2 + digitCount(rec.Start)
	if rec.HasLength() {
		n += 2 + digitCount(rec.Length) + 1
	} else {
		n++
	}
	return n
}

// RenderTo writes `name(arg, start[, length])` into dst and returns the number
// of bytes written. len(dst) is the capacity and must leave one spare byte for
// a terminator, so a call needing exactly len(dst) bytes fails.
func RenderTo(dst []byte, rec *CallRecord) (int, error) {
	if rec == nil || len(dst) == 0 {
		return 0, newError(KindNullInput, "render requires a record and a non-empty buffer")
	}

	required := RequiredLen(rec)
	if required >= len(dst) {
		return 0, newError(KindOutputBufferTooShort, "need %d bytes, buffer holds %d", required+1, len(dst))
	}

	out := dst[:0]
	out = append(out, rec.FuncName...)
	out = append(out, '(')
	out = append(out, rec.Argument...)
	out = append(out, ", "...)
	out = strconv.AppendInt(out, rec.Start, 10)
	if rec.HasLength() {
		out = append(out, ", "...)
		out = strconv.AppendInt(out, rec.Length, 10)
	}
	out = append(out, ')')

	// append reallocates instead of failing when dst is too small, so a
	// different backing array or length means the precomputation was wrong.
	written := len(out)
	if written != required || written >= len(dst) || &out[0] != &dst[0] {
		return 0, newError(KindOutputBufferTooShort, "wrote %d bytes, expected %d", written, required)
	}
	return written, nil
}

// Render renders rec into a fresh buffer of the given capacity.
func Render(rec *CallRecord, capacity int) (string, error) {
	if capacity <= 0 {
		return "", newError(KindNullInput, "render requires a positive capacity")
	}
	buf := make([]byte, capacity)
	n, err := RenderTo(buf, rec)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
