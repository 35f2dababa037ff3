package format

import (
	"strconv"
	"strings"
	"testing"
)

func TestBytes(t *testing.T) {
	const pb = 1 << 50

	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0.00 B"},
		{1, "1.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1 << 20, "1.00 MB"},
		{1 << 30, "1.00 GB"},
		{1 << 40, "1.00 TB"},
		{pb, "1.00 PB"},
		{512 * pb, "512.00 PB"},
		// There is no EB unit; everything past a petabyte stays in PB.
		{1024 * pb, "1024.00 PB"},
		{4096 * pb, "4096.00 PB"},
	}

	for _, c := range cases {
		if got := Bytes(c.in); got != c.want {
			t.Errorf("Bytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBytesScaledBelow1024(t *testing.T) {
	inputs := []uint64{0, 7, 999, 1025, 123456, 987654321, 1<<40 + 12345, 1<<50 - 1}

	for _, in := range inputs {
		got := Bytes(in)

		parts := strings.SplitN(got, " ", 2)
		if len(parts) != 2 {
			t.Fatalf("Bytes(%d) = %q, want \"<value> <unit>\"", in, got)
		}

		value, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			t.Fatalf("Bytes(%d) = %q, numeric part does not parse: %v", in, got, err)
		}

		switch parts[1] {
		case "B", "KB", "MB", "GB", "TB":
			if value >= 1024 {
				t.Errorf("Bytes(%d) = %q, scaled value not below 1024", in, got)
			}
		case "PB":
			// PB is the ceiling unit and may exceed 1024.
		default:
			t.Errorf("Bytes(%d) = %q, unknown unit %q", in, got, parts[1])
		}
	}
}
