package substr

// TranslateCall parses input, translates it for rule and renders the result
// into dst. It returns the number of bytes written; the rendered call is
// dst[:n]. The first failing stage's error is returned as is.
func TranslateCall(input string, rule *Rule, dst []byte) (int, error) {
	if rule == nil || len(dst) == 0 {
		return 0, newError(KindNullInput, "translate call requires a rule and a non-empty buffer")
	}

	in, err := Parse(input)
	if err != nil {
		return 0, err
	}

	out, err := Translate(rule, in)
	if err != nil {
		return 0, err
	}

	return RenderTo(dst, out)
}

// TranslateString is TranslateCall with a freshly allocated buffer of the given capacity.
func TranslateString(input string, rule *Rule, capacity int) (string, error) {
	if capacity <= 0 {
		return "", newError(KindNullInput, "translate call requires a positive capacity")
	}
	buf := make([]byte, capacity)
	n, err := TranslateCall(input, rule, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
