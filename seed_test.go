package uvmap

import (
	"strings"
	"testing"
)

func TestHashCode(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"abc", 96354},
		{"-1", 1444},
		{"hello", 99162322},
		{"4294967296", 3632702254},
		{"12345678901", 745463030},
	}
	for _, tt := range tests {
		if got := HashCode([]byte(tt.in)); got != tt.want {
			t.Errorf("HashCode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDeriveSeed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{"empty", "", 0},
		{"zero", "0", 0},
		{"small number", "42", 42},
		{"leading zeros", "0000000007", 7},
		{"max uint32", "4294967295", 4294967295},
		{"overflow falls back to hash", "4294967296", 3632702254},
		{"eleven digits hash", "12345678901", 745463030},
		{"sign is not a digit", "-1", 1444},
		{"text", "hello", 99162322},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveSeedString(tt.in); got != tt.want {
				t.Errorf("DeriveSeedString(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveSeedLongTokensHash(t *testing.T) {
	for _, s := range []string{
		"00000000000",
		"99999999999",
		strings.Repeat("7", 64),
		"a long passphrase with spaces",
	} {
		if got, want := DeriveSeedString(s), HashCode([]byte(s)); got != want {
			t.Errorf("DeriveSeedString(%q) = %d, want hash %d", s, got, want)
		}
	}
}

func TestDeriveSeedNonDigitShortTokensHash(t *testing.T) {
	for _, s := range []string{"1a", " 1", "1 ", "12.5", "０", "x"} {
		if len(s) > maxSeedDigits {
			continue
		}
		if got, want := DeriveSeedString(s), HashCode([]byte(s)); got != want {
			t.Errorf("DeriveSeedString(%q) = %d, want hash %d", s, got, want)
		}
	}
}

func TestDeriveSeedBytesMatchesString(t *testing.T) {
	for _, s := range []string{"", "0", "123", "seed"} {
		if DeriveSeed([]byte(s)) != DeriveSeedString(s) {
			t.Errorf("DeriveSeed and DeriveSeedString disagree for %q", s)
		}
	}
}

func BenchmarkDeriveSeed(b *testing.B) {
	token := []byte("a long passphrase with spaces")
	b.ReportAllocs()
	for b.Loop() {
		_ = DeriveSeed(token)
	}
}
