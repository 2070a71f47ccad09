package encryption

import "testing"

func TestKeyringCachesSchedules(t *testing.T) {
	ring, err := newKeyring("abc")
	if err != nil {
		t.Fatalf("newKeyring: %v", err)
	}

	first, err := ring.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	for i := 0; i < 8; i++ {
		if _, err := ring.next(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}

	// A three character password only ever produces three distinct keys.
	if got := len(ring.ciphers); got != 3 {
		t.Errorf("cached schedules = %d, want 3", got)
	}

	// Nine blocks later the offset is back at zero.
	again, err := ring.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	if first != again {
		t.Error("schedule for offset 0 was not reused")
	}
}

func TestZeroPad(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{1, 16},
		{16, 16},
		{17, 32},
	}

	for _, tt := range tests {
		if got := len(zeroPad(make([]byte, tt.in), 16)); got != tt.want {
			t.Errorf("zeroPad(%d) length = %d, want %d", tt.in, got, tt.want)
		}
	}
}
