package core

// Key enum (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
)

// ProcessInput polls the keys the loop reacts to. Escape requests close.
func ProcessInput(w Window) {
	if w.KeyPressed(KeyEscape) {
		w.SetShouldClose(true)
	}
}
