package render

import "strconv"

// FormatNumber renders n with digits grouped in threes separated by spaces
func FormatNumber(n int64) string {
	if n < 0 {
		if n == -n {
			// MinInt64 has no positive counterpart
			s := strconv.FormatInt(n, 10)
			return "-" + group(s[1:])
		}
		return "-" + group(strconv.FormatInt(-n, 10))
	}
	return group(strconv.FormatInt(n, 10))
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	out := make([]byte, 0, len(digits)+len(digits)/3)
	out = append(out, digits[:head]...)
	for i := head; i < len(digits); i += 3 {
		out = append(out, ' ')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
