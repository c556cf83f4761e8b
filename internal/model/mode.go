package model

// Mode is a human-friendly load state for a timestep.
// Keep these values stable; they are intended for CSV output.
type Mode string

const (
	ModeOn  Mode = "ON"
	ModeOff Mode = "OFF"
)

func ModeFromPowerW(powerW float64) Mode {
	if powerW > 0 {
		return ModeOn
	}
	return ModeOff
}
