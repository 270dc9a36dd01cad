package masterdata

import "strings"

// Hangul syllable composition constants. A precomposed syllable decomposes
// as ((r - hangulBase) / choseongStride) indexing into choseong.
const (
	hangulBase     = 0xAC00
	hangulEnd      = 0xD7A3
	choseongStride = 588
)

var choseong = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")

// MatchesQuery reports whether name matches the autocomplete query: either
// a plain prefix match, or — when the query is written entirely in Hangul
// initial consonants — a match against the name's choseong sequence, the
// way the order form's quick search behaves.
func MatchesQuery(name, query string) bool {
	name = strings.TrimSpace(name)
	query = strings.TrimSpace(query)
	if name == "" || query == "" {
		return false
	}
	if strings.HasPrefix(name, query) {
		return true
	}
	if !isChoseongOnly(query) {
		return false
	}
	return strings.HasPrefix(choseongOf(name), query)
}

func isChoseongOnly(s string) bool {
	for _, r := range s {
		if !isChoseong(r) {
			return false
		}
	}
	return true
}

func isChoseong(r rune) bool {
	for _, c := range choseong {
		if c == r {
			return true
		}
	}
	return false
}

// choseongOf maps every precomposed Hangul syllable in s to its initial
// consonant; other runes pass through unchanged.
func choseongOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= hangulBase && r <= hangulEnd {
			b.WriteRune(choseong[(r-hangulBase)/choseongStride])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
