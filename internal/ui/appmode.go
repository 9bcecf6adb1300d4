package ui

// AppMode tells keybind hints whether a photo is open in the comment panel.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModePhotoOpen
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModePhotoOpen:
		return "PhotoOpen"
	default:
		return "Unknown"
	}
}
