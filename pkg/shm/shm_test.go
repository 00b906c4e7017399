package shm

import "testing"

func TestNewWriteReadBack(t *testing.T) {
	m, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	buf := m.Bytes()
	if len(buf) != 16 {
		t.Fatalf("Bytes() len = %d, want 16", len(buf))
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	for i, b := range m.Bytes() {
		if b != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, b, i)
		}
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for zero size")
	}
}
