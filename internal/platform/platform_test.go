package platform

import "testing"

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want OS
		err  bool
	}{
		{"linux", Linux, false},
		{"macos", MacOS, false},
		{"darwin", MacOS, false},
		{"mac", MacOS, false},
		{"windows", Windows, false},
		{"win", Windows, false},
		{"plan9", Linux, true},
		{"", Linux, true},
	}

	for _, tt := range tests {
		got, err := FromName(tt.name)
		if (err != nil) != tt.err {
			t.Errorf("FromName(%q) error = %v", tt.name, err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFamilyTraits(t *testing.T) {
	if !MacOS.CtrlMetaSwapped() || !MacOS.UsesArrowGlyphs() {
		t.Error("macOS should swap ctrl/meta and use arrow glyphs")
	}
	for _, o := range []OS{Linux, Windows} {
		if o.CtrlMetaSwapped() || o.UsesArrowGlyphs() {
			t.Errorf("%v should not swap ctrl/meta or use arrow glyphs", o)
		}
	}
}
