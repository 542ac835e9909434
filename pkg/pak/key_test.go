package pak

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	key := New("mycompany", "abcdefg", "bacdegadsa")
	expected := "mycompany_abcdefg_bacdegadsa"
	if key.String() != expected {
		t.Fatalf("String() = %q, want %q", key.String(), expected)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "well formed",
			input: "mycompany_abcdefg_bacdegadsa",
		},
		{
			name:    "two components",
			input:   "a_b",
			wantErr: ErrWrongComponentCount,
		},
		{
			name:    "four components",
			input:   "mycompany_abcd_efg_bacdegadsa",
			wantErr: ErrWrongComponentCount,
		},
		{
			name:    "no separators",
			input:   "mycompany",
			wantErr: ErrWrongComponentCount,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrWrongComponentCount,
		},
		{
			name:    "empty short token",
			input:   "a__c",
			wantErr: ErrEmptyComponent,
		},
		{
			name:    "empty prefix",
			input:   "_b_c",
			wantErr: ErrEmptyComponent,
		},
		{
			name:    "empty long token",
			input:   "a_b_",
			wantErr: ErrEmptyComponent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := FromString(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromString(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromString(%q) error = %v", tt.input, err)
			}
			if key.String() != tt.input {
				t.Fatalf("round trip = %q, want %q", key.String(), tt.input)
			}
		})
	}
}

func TestFromStringComponents(t *testing.T) {
	key, err := FromString("mycompany_abcdefg_bacdegadsa")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if key.Prefix() != "mycompany" {
		t.Errorf("Prefix() = %q", key.Prefix())
	}
	if key.ShortToken() != "abcdefg" {
		t.Errorf("ShortToken() = %q", key.ShortToken())
	}
	if key.LongToken() != "bacdegadsa" {
		t.Errorf("LongToken() = %q", key.LongToken())
	}
}

func TestLongTokenHashVector(t *testing.T) {
	// Known SHA-256 vector for the reference key format.
	key, err := FromString("mycompany_CEUsS4psCmc_BddpcwWyCT3EkDjHSSTRaSK1dxtuQgbjb")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	expected := "0f01ab6e0833f280b73b2b618c16102d91c0b7c585d42a080d6e6603239a8bee"
	if got := key.LongTokenHash(DigestSHA256); got != expected {
		t.Fatalf("LongTokenHash = %q, want %q", got, expected)
	}

	// A second computation must match, proving hash state is not
	// carried between calls.
	if got := key.LongTokenHash(DigestSHA256); got != expected {
		t.Fatalf("second LongTokenHash = %q, want %q", got, expected)
	}
}

func TestMasked(t *testing.T) {
	key := New("mycompany", "abcdefg", "bacdegadsa")
	expected := "mycompany_abcdefg_**********"
	if key.Masked() != expected {
		t.Fatalf("Masked() = %q, want %q", key.Masked(), expected)
	}
}

func TestLogValueHidesLongToken(t *testing.T) {
	key := New("mycompany", "abcdefg", "bacdegadsa")

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("issued key", "key", key)

	logged := buf.String()
	if strings.Contains(logged, "bacdegadsa") {
		t.Fatalf("log output leaks long token: %q", logged)
	}
	if !strings.Contains(logged, "mycompany") || !strings.Contains(logged, "abcdefg") {
		t.Fatalf("log output missing public components: %q", logged)
	}
}
