package huffpack

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}
	testData := [...]testRow{
		{hc: MakeCode(0, 0), expect: `""`},
		{hc: MakeCode(1, 0), expect: `"0"`},
		{hc: MakeCode(3, 5), expect: `"101"`},
		{hc: MakeCode(5, 1), expect: `"00001"`},
	}
	for _, row := range testData {
		if actual := row.hc.String(); actual != row.expect {
			t.Errorf("MakeCode(%d, %#x).String(): expected %s, got %s", row.hc.Size, row.hc.Bits, row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	hc := Code{}.Append(1).Append(0).Append(1).Append(1)
	if expect := MakeCode(4, 0xb); hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}
	for i, expect := range []uint64{1, 0, 1, 1} {
		if actual := hc.Bit(byte(i)); actual != expect {
			t.Errorf("Bit(%d): expected %d, got %d", i, expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // "1011"

	type testRow struct {
		prefix Code
		expect bool
	}
	testData := [...]testRow{
		{prefix: MakeCode(0, 0), expect: true},
		{prefix: MakeCode(1, 1), expect: true},
		{prefix: MakeCode(2, 2), expect: true},
		{prefix: MakeCode(3, 5), expect: true},
		{prefix: MakeCode(4, 0xb), expect: true},
		{prefix: MakeCode(1, 0), expect: false},
		{prefix: MakeCode(3, 4), expect: false},
		{prefix: MakeCode(5, 0x16), expect: false},
	}
	for _, row := range testData {
		t.Run(row.prefix.String(), func(t *testing.T) {
			if actual := hc.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
