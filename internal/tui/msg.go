package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick is sent once per tick period. Ticks carrying a generation other
// than the model's current one belong to a timer that has been replaced
// and are dropped without rescheduling.
type MsgTick struct {
	Generation int
}

func (MsgTick) sealed() {}
