// Package x11 publishes status lines to the X11 root window name, where
// status bars such as dwm's pick them up.
package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/runoshun/classclock/internal/domain"
)

// Ensure RootNameSink implements domain.StatusSink.
var _ domain.StatusSink = (*RootNameSink)(nil)

// RootNameSink sets WM_NAME on the root window of the default screen.
type RootNameSink struct {
	conn *xgb.Conn
	root xproto.Window
	last string
}

// Open connects to the display named by $DISPLAY.
func Open() (*RootNameSink, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, domain.ErrNoDisplay
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X11: %w", err)
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &RootNameSink{conn: conn, root: screen.Root}, nil
}

// Publish replaces the root window name with status.
// Repeating the previous status is a no-op.
func (s *RootNameSink) Publish(status string) error {
	if status == s.last {
		return nil
	}
	err := xproto.ChangePropertyChecked(
		s.conn,
		xproto.PropModeReplace,
		s.root,
		xproto.AtomWmName,
		xproto.AtomString,
		8,
		uint32(len(status)),
		[]byte(status),
	).Check()
	if err != nil {
		return fmt.Errorf("update X11 root name: %w", err)
	}
	s.last = status
	return nil
}

// Close closes the X11 connection.
func (s *RootNameSink) Close() error {
	s.conn.Close()
	return nil
}
