package colorparse

import "testing"

func TestHex(t *testing.T) {
	cases := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ffffff", RGB{255, 255, 255}, false},
		{"000000", RGB{0, 0, 0}, false},
		{"#009fce", RGB{0, 0x9f, 0xce}, false},
		{"#abc", RGB{}, true},
		{"#gggggg", RGB{}, true},
	}
	for _, c := range cases {
		got, err := Hex(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Hex(%q): expected error, got none", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Hex(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Hex(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestMustHexFallback(t *testing.T) {
	fallback := RGB{1, 2, 3}
	if got := MustHex("not-a-color", fallback); got != fallback {
		t.Errorf("MustHex fallback not used: got %+v", got)
	}
	if got := MustHex("#010203", fallback); got != (RGB{1, 2, 3}) {
		t.Errorf("MustHex parsed value wrong: got %+v", got)
	}
}

func TestStandardInkColors(t *testing.T) {
	if InkCyan.Array() != [3]uint8{0, 0x9f, 0xce} {
		t.Errorf("InkCyan = %+v", InkCyan)
	}
	if InkBlack.Array() != [3]uint8{0x10, 0x0c, 0x08} {
		t.Errorf("InkBlack = %+v", InkBlack)
	}
}
