package core

import "testing"

type keyWindow struct {
	fakeWindow
	down map[Key]bool
}

func (k *keyWindow) KeyPressed(key Key) bool { return k.down[key] }

func TestProcessInput(t *testing.T) {
	tests := []struct {
		name string
		down map[Key]bool
		want bool
	}{
		{name: "nothing pressed", down: nil, want: false},
		{name: "space does not close", down: map[Key]bool{KeySpace: true}, want: false},
		{name: "escape closes", down: map[Key]bool{KeyEscape: true}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &keyWindow{down: tt.down}
			ProcessInput(w)
			if w.ShouldClose() != tt.want {
				t.Errorf("ShouldClose() = %v, want %v", w.ShouldClose(), tt.want)
			}
		})
	}
}
