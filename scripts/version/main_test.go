package main

import "testing"

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.2.3", want: "v1.2.3"},
		{in: "v0.2.0", want: "v0.2.0"},
		{in: "1.0.0-beta.1", want: "v1.0.0-beta.1"},
		{in: "1.2", wantErr: true},
		{in: "latest", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalizeVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBumpVersion(t *testing.T) {
	src := "package internal\n\nvar Version = \"0.1.0\"\n\nconst AppName = \"Growgroove\"\n"

	got, err := bumpVersion(src, "v0.2.0")
	if err != nil {
		t.Fatalf("bumpVersion() error = %v", err)
	}
	want := "package internal\n\nvar Version = \"0.2.0\"\n\nconst AppName = \"Growgroove\"\n"
	if got != want {
		t.Errorf("bumpVersion() = %q, want %q", got, want)
	}

	if _, err := bumpVersion("package internal\n", "v0.2.0"); err == nil {
		t.Error("bumpVersion() expected error without a Version declaration")
	}
}
