package publish

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrInvalidDestination is returned for destinations that cannot be parsed.
var ErrInvalidDestination = errors.New("invalid destination")

const defaultSFTPPort = "22"

// Destination is where the exported pages go: a local directory or a
// directory on an SFTP server.
type Destination struct {
	SFTP     bool
	Host     string
	Port     string
	Username string
	Password string
	// Dir is a local path, or an absolute remote path for SFTP.
	Dir string
}

// ParseDestination accepts a local directory or
// sftp://[user[:password]@]host[:port]/remote/dir.
func ParseDestination(raw string) (Destination, error) {
	if raw == "" {
		return Destination{}, fmt.Errorf("%w: empty", ErrInvalidDestination)
	}

	if !strings.HasPrefix(raw, "sftp://") {
		// Windows paths use backslashes.
		return Destination{Dir: filepath.Clean(strings.ReplaceAll(raw, "\\", "/"))}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Destination{}, fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}
	if u.Hostname() == "" {
		return Destination{}, fmt.Errorf("%w: missing host in %q", ErrInvalidDestination, raw)
	}

	d := Destination{
		SFTP: true,
		Host: u.Hostname(),
		Port: u.Port(),
		Dir:  u.Path,
	}
	if d.Port == "" {
		d.Port = defaultSFTPPort
	}
	if d.Dir == "" {
		d.Dir = "/"
	}
	if u.User != nil {
		d.Username = u.User.Username()
		d.Password, _ = u.User.Password()
	}
	return d, nil
}

// String renders the destination without its password.
func (d Destination) String() string {
	if !d.SFTP {
		return d.Dir
	}
	user := ""
	if d.Username != "" {
		user = d.Username + "@"
	}
	return fmt.Sprintf("sftp://%s%s:%s%s", user, d.Host, d.Port, d.Dir)
}
