package loop

// KeyCode identifies a non-printable key, or KeyRune for text input.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is one keyboard event, normalised across front ends.
type Key struct {
	Code KeyCode
	Rune rune
}

func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func Code(c KeyCode) Key {
	return Key{Code: c}
}

func (k Key) IsDigit() bool {
	return k.Code == KeyRune && k.Rune >= '0' && k.Rune <= '9'
}

func (k Key) IsPrintable() bool {
	return k.Code == KeyRune && k.Rune >= 32 && k.Rune <= 126
}
