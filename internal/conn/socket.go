package conn

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// dialUnix connects to the UNIX-domain stream socket at path and
// returns the raw, non-blocking file descriptor together with the
// *os.File that owns it (closing the File closes the fd).
func dialUnix(path string) (*os.File, int, error) {
	c, err := net.Dial("unix", path)
	if err != nil {
		return nil, -1, fmt.Errorf("dial %s: %w", path, err)
	}
	uc, ok := c.(*net.UnixConn)
	if !ok {
		c.Close()
		return nil, -1, fmt.Errorf("dial %s: not a unix socket", path)
	}
	f, err := uc.File()
	uc.Close()
	if err != nil {
		return nil, -1, fmt.Errorf("dial %s: %w", path, err)
	}
	fd := int(f.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		f.Close()
		return nil, -1, fmt.Errorf("dial %s: set nonblock: %w", path, err)
	}
	return f, fd, nil
}
