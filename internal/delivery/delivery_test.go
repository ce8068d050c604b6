package delivery

import "testing"

func TestEligible(t *testing.T) {
	tests := []struct {
		name    string
		address string
		areas   AreaSet
		want    bool
	}{
		{"address inside area", "123 Main St, Springfield", AreaSet{"Springfield"}, true},
		{"address outside area", "123 Main St", AreaSet{"Springfield"}, false},
		{"empty address", "", AreaSet{"Springfield"}, false},
		{"empty area set", "x", AreaSet{}, false},
		{"second area matches", "港区芝公園4丁目", AreaSet{"千代田区", "港区"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.areas.Eligible(tt.address); got != tt.want {
				t.Fatalf("Eligible(%q, %v) = %v, want %v", tt.address, tt.areas, got, tt.want)
			}
		})
	}
}
