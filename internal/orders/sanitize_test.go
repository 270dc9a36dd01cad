package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeValueNumber(t *testing.T) {
	assert.Equal(t, "550000", SanitizeValue(KindNumber, "550,000"))
	assert.Equal(t, "-12000", SanitizeValue(KindNumber, " -12,000 "))
	assert.Equal(t, "12.5", SanitizeValue(KindNumber, "12.5"))
	assert.Equal(t, "", SanitizeValue(KindNumber, "오만원"))
	assert.Equal(t, "", SanitizeValue(KindNumber, "12abc"))
	assert.Equal(t, "", SanitizeValue(KindNumber, ""))
}

func TestSanitizeValueDate(t *testing.T) {
	assert.Equal(t, "2025-03-14", SanitizeValue(KindDate, "2025-03-14"))
	assert.Equal(t, "", SanitizeValue(KindDate, "2025-3-14"))
	assert.Equal(t, "", SanitizeValue(KindDate, "14/03/2025"))
	assert.Equal(t, "", SanitizeValue(KindDate, ""))
}

func TestSanitizeValueDateTime(t *testing.T) {
	assert.Equal(t, "2025-03-14T09:30", SanitizeValue(KindDateTime, "2025-03-14T09:30"))
	// space separator normalizes to the canonical form
	assert.Equal(t, "2025-03-14T09:30", SanitizeValue(KindDateTime, "2025-03-14 09:30"))
	assert.Equal(t, "", SanitizeValue(KindDateTime, "2025-03-14"))
	assert.Equal(t, "", SanitizeValue(KindDateTime, "noon-ish"))
}

func TestSanitizeValueCheckbox(t *testing.T) {
	for _, truthy := range []string{CheckOn, "1", "Y", "y", "true", "on"} {
		assert.Equal(t, CheckOn, SanitizeValue(KindCheckbox, truthy), truthy)
	}
	for _, falsy := range []string{"", CheckOff, "0", "no", "off"} {
		assert.Equal(t, "", SanitizeValue(KindCheckbox, falsy), falsy)
	}
}

func TestSanitizeValueText(t *testing.T) {
	assert.Equal(t, "한진물류", SanitizeValue(KindText, "  한진물류  "))
}

func TestSanitizeValueIdempotent(t *testing.T) {
	cases := map[ColumnKind]string{
		KindNumber:   "550,000",
		KindDate:     "2025-03-14",
		KindDateTime: "2025-03-14 09:30",
		KindCheckbox: "Y",
		KindText:     " memo ",
	}
	for kind, raw := range cases {
		once := SanitizeValue(kind, raw)
		assert.Equal(t, once, SanitizeValue(kind, once), string(kind))
	}
}

func TestSanitizeRecord(t *testing.T) {
	fields := map[string]string{
		"order_date":  "2025-03-14",
		"base_freight": "350,000",
		"tax_issued":  "1",
		"bogus":       "x",
		"also_bogus":  "y",
	}
	unknown := SanitizeRecord(fields)

	assert.ElementsMatch(t, []string{"bogus", "also_bogus"}, unknown)
	assert.Equal(t, "350000", fields["base_freight"])
	assert.Equal(t, CheckOn, fields["tax_issued"])
	// unknown fields are reported, not touched
	assert.Equal(t, "x", fields["bogus"])
}

func TestKnownColumn(t *testing.T) {
	assert.True(t, KnownColumn("driver_freight"))
	assert.True(t, KnownColumn("tax_images"))
	assert.False(t, KnownColumn("id"))
	assert.False(t, KnownColumn("created_at"))
}
