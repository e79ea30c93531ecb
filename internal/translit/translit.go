// Package translit transliterates Russian Cyrillic text to Latin script
// following ISO 9:1995 / GOST 7.79-2000, system B.
package translit

import (
	"strings"
	"unicode"

	"codeberg.org/mutker/guard/internal/check"
	"golang.org/x/text/unicode/norm"
)

// System B alphabet, lower case only.
var alphabet = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "e",
	'ё': "yo",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "j",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "x",
	'ц': "cz",
	'ч': "ch",
	'ш': "sh",
	'щ': "shh",
	'ъ': "",
	'ы': "y",
	'ь': "",
	'э': "e",
	'ю': "yu",
	'я': "ya",
}

// RuToLat transliterates s. Runes outside the Russian alphabet are copied
// as is; an upper-case letter produces an upper-case replacement ("Ж" → "ZH").
//
// Input is walked in NFC segments so that decomposed "ё" and "й" are matched.
// Segments holding no Russian letter are copied byte for byte; only segments
// that are transliterated come out normalised.
func RuToLat(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var it norm.Iter
	it.InitString(norm.NFC, s)

	for !it.Done() {
		start := it.Pos()
		segment := string(it.Next())

		if !hasLetter(segment) {
			b.WriteString(s[start:it.Pos()])
			continue
		}

		for _, r := range segment {
			repl, ok := alphabet[unicode.ToLower(r)]
			switch {
			case !ok:
				b.WriteRune(r)
			case unicode.IsUpper(r):
				b.WriteString(strings.ToUpper(repl))
			default:
				b.WriteString(repl)
			}
		}
	}

	return b.String()
}

func hasLetter(segment string) bool {
	for _, r := range segment {
		if _, ok := alphabet[unicode.ToLower(r)]; ok {
			return true
		}
	}

	return false
}

// RuToLatPtr is RuToLat for an optional string; a nil s is an ErrNullArgument.
func RuToLatPtr(s *string) (string, error) {
	if _, err := check.NotNull(s, "s"); err != nil {
		return "", err
	}

	return RuToLat(*s), nil
}
