package annotation

// HintState is the visual state of a joint name in the hint panel.
type HintState int

const (
	HintPending HintState = iota
	HintDone
)

type Hint struct {
	Name  string
	State HintState
}

// Hints reports, for each joint in schema order, whether it has already
// been recorded (clicked or skipped) given a sequence length.
func Hints(recorded int) []Hint {
	hints := make([]Hint, SchemaSize)
	for i, name := range Schema {
		state := HintPending
		if i < recorded {
			state = HintDone
		}
		hints[i] = Hint{Name: name, State: state}
	}
	return hints
}
