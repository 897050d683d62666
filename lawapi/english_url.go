package lawapi

import "strings"

// EnglishLawPath is the site path prefix for official English translations.
const EnglishLawPath = "/영문법령/"

const upperhex = "0123456789ABCDEF"

// BuildEnglishLawURL builds a link to the English translation of a statute
// on the National Law Information site. The path segment is the Korean
// statute name, suffixed with "/(promulgationNo,promulgationDate)" when both
// are given. An empty name short-circuits to the bare base URL.
func BuildEnglishLawURL(base, lawName, promulgationNo, promulgationDate string) string {
	if lawName == "" {
		return base
	}
	path := EnglishLawPath + lawName
	if promulgationNo != "" && promulgationDate != "" {
		path += "/(" + promulgationNo + "," + promulgationDate + ")"
	}
	return base + quotePath(path)
}

// quotePath percent-encodes every byte outside [A-Za-z0-9-._~], keeping "/",
// "(" and ")" literal. url.PathEscape is not equivalent: it escapes the
// parentheses used by the promulgation suffix.
func quotePath(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if isPathSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isPathSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '/', '(', ')':
		return true
	}
	return false
}
