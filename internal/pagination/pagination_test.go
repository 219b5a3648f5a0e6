package pagination

import "testing"

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name       string
		sizeRaw    string
		numberRaw  string
		wantSize   int
		wantNumber int
	}{
		{"both absent", "", "", 10, 1},
		{"valid values", "5", "3", 5, 3},
		{"zero size", "0", "2", 10, 2},
		{"negative size", "-4", "2", 10, 2},
		{"zero page", "5", "0", 5, 1},
		{"negative page", "5", "-1", 5, 1},
		{"non-numeric size", "ten", "2", 10, 2},
		{"non-numeric page", "5", "two", 5, 1},
		{"float size", "10.5", "1", 10, 1},
		{"garbage both", "!!", "??", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.sizeRaw, tt.numberRaw)
			if p.Size != tt.wantSize || p.Number != tt.wantNumber {
				t.Fatalf("Parse(%q, %q) = %+v, want size=%d number=%d",
					tt.sizeRaw, tt.numberRaw, p, tt.wantSize, tt.wantNumber)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		size, number, want int
	}{
		{10, 1, 0},
		{10, 2, 10},
		{5, 4, 15},
		{1, 100, 99},
	}
	for _, tt := range tests {
		p := Params{Size: tt.size, Number: tt.number}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Params{%d, %d}.Offset() = %d, want %d", tt.size, tt.number, got, tt.want)
		}
		if got := p.Limit(); got != tt.size {
			t.Errorf("Params{%d, %d}.Limit() = %d, want %d", tt.size, tt.number, got, tt.size)
		}
	}
}
