package scene

// Layer is one mounted display node and the component that owns it.
type Layer struct {
	Owner  string
	Screen Screen
}

// Stage is the display layer. The background is persistent and survives
// Clear; everything else belongs to the live phase.
type Stage struct {
	background bool
	layers     []Layer
}

func NewStage() *Stage {
	return &Stage{}
}

func (s *Stage) SetBackground(on bool) {
	s.background = on
}

func (s *Stage) Background() bool {
	return s.background
}

func (s *Stage) Mount(owner string, sc Screen) {
	s.Unmount(owner)
	s.layers = append(s.layers, Layer{Owner: owner, Screen: sc})
}

func (s *Stage) Unmount(owner string) bool {
	for i, l := range s.layers {
		if l.Owner == owner {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Clear detaches every layer and reports how many were left behind.
func (s *Stage) Clear() int {
	n := len(s.layers)
	s.layers = nil
	return n
}

func (s *Stage) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}

// Top is the most recently mounted screen, or nil.
func (s *Stage) Top() Screen {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1].Screen
}
