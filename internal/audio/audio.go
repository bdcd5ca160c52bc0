package audio

// Cue names a sound effect.
type Cue string

const (
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueCoins   Cue = "coins"
	CueTick    Cue = "tick"
	CueDayEnd  Cue = "day_end"
	CueClick   Cue = "click"
)

func Cues() []Cue {
	return []Cue{CueCorrect, CueWrong, CueCoins, CueTick, CueDayEnd, CueClick}
}

// Service plays cues and owns the master volume. Components receive it
// through their constructor.
type Service interface {
	Play(cue Cue)
	SetVolume(v float32)
	Volume() float32
}

// Nop is a silent Service that still tracks volume.
type Nop struct {
	volume float32
}

func NewNop() *Nop {
	return &Nop{volume: 1}
}

func (n *Nop) Play(Cue) {}

func (n *Nop) SetVolume(v float32) {
	n.volume = ClampVolume(v)
}

func (n *Nop) Volume() float32 {
	return n.volume
}

func ClampVolume(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
