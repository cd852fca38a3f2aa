package depgraph

import "testing"

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/p/src/app.test.ts", true},
		{"/p/src/app.spec.tsx", true},
		{"/p/src/app.test.mjs", true},
		{"/p/src/__tests__/helpers.js", true},
		{"/p/src/app.ts", false},
		{"/p/src/testing.ts", false},
		{"/p/src/app.test.css", false},
		{"/p/src/__tests__/fixture.json", false},
	}

	for _, tt := range tests {
		if got := IsTestFile(tt.path); got != tt.want {
			t.Errorf("IsTestFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
