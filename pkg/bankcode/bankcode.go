package bankcode

import "strings"

// entry pairs a bank-name fragment with its 3-digit inter-bank code.
// Lookup is substring-in-either-direction so both "국민" and
// "KB국민은행 강남지점" resolve to 004.
type entry struct {
	name string
	code string
}

var table = []entry{
	{"국민", "004"},
	{"기업", "003"},
	{"산업", "002"},
	{"수협", "007"},
	{"농협", "011"},
	{"우리", "020"},
	{"SC제일", "023"},
	{"씨티", "027"},
	{"대구", "031"},
	{"부산", "032"},
	{"광주", "034"},
	{"제주", "035"},
	{"전북", "037"},
	{"경남", "039"},
	{"새마을", "045"},
	{"신협", "048"},
	{"우체국", "071"},
	{"하나", "081"},
	{"신한", "088"},
	{"케이뱅크", "089"},
	{"카카오", "090"},
	{"토스", "092"},
}

// Lookup resolves a free-text bank name to its 3-digit code. The first
// entry whose name contains, or is contained in, the trimmed input wins.
// Empty input or no match returns "".
func Lookup(bankName string) string {
	name := strings.TrimSpace(bankName)
	if name == "" {
		return ""
	}
	for _, e := range table {
		if strings.Contains(name, e.name) || strings.Contains(e.name, name) {
			return e.code
		}
	}
	return ""
}
