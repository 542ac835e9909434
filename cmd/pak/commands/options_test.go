package commands

import "testing"

func TestResolveDigest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hashLen int
		wantErr bool
	}{
		{name: "sha224", input: "sha224", hashLen: 28},
		{name: "sha256", input: "sha256", hashLen: 32},
		{name: "sha384", input: "sha384", hashLen: 48},
		{name: "sha512", input: "sha512", hashLen: 64},
		{name: "sha512-224", input: "sha512-224", hashLen: 28},
		{name: "sha512-256", input: "sha512-256", hashLen: 32},
		{name: "unknown", input: "md5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := resolveDigest(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveDigest(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveDigest(%q): %v", tt.input, err)
			}
			if size := digest.NewHash().Size(); size != tt.hashLen {
				t.Errorf("digest size = %d, want %d", size, tt.hashLen)
			}
		})
	}
}

func TestResolveRandomSource(t *testing.T) {
	if _, err := resolveRandomSource("os"); err != nil {
		t.Fatalf("resolveRandomSource(os): %v", err)
	}
	if _, err := resolveRandomSource("fortuna"); err == nil {
		t.Fatal("resolveRandomSource accepted an unknown source")
	}
}
