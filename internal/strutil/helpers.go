package strutil

func isWS(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		if !isWS(str[i]) {
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		if !isWS(str[i-1]) {
			return str[:i]
		}
	}

	return ""
}

// StripWS strips ASCII whitespaces from both ends of the string.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// CutField returns the first whitespace-separated token and the rest following it.
// Leading whitespaces are skipped. Empty field is returned if there are no tokens left.
func CutField(str string) (field, rest string) {
	str = LStripWS(str)
	for i := 0; i < len(str); i++ {
		if isWS(str[i]) {
			return str[:i], str[i:]
		}
	}

	return str, ""
}

// TrimLineTerminator strips a trailing LF optionally preceded by CR.
func TrimLineTerminator(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}

	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line
}
