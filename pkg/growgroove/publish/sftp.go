package publish

import (
	"context"
	"fmt"
	"net"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 2
	DefaultRetryDelay = time.Second
)

// SFTPOptions configure how the SSH connection is made. Credentials in the
// destination URL take precedence over a key file.
type SFTPOptions struct {
	// KeyFile is a private key used when the destination has no password.
	KeyFile string
	// KnownHosts is an OpenSSH known_hosts file. Without one the host key
	// is not checked.
	KnownHosts string
	Timeout time.Duration
	// Retries is how many more dials are made after the first one fails.
	// Zero means DefaultRetries.
	Retries    int
	RetryDelay time.Duration
}

func (o *SFTPOptions) applyDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Retries <= 0 {
		o.Retries = DefaultRetries
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultRetryDelay
	}
}

// SFTPTarget writes documents into a directory on an SFTP server.
type SFTPTarget struct {
	dir        string
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	logger     *zap.Logger
}

func clientConfig(dest Destination, opts SFTPOptions, logger *zap.Logger) (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod
	if dest.Password != "" {
		auth = append(auth, ssh.Password(dest.Password))
	}
	if opts.KeyFile != "" {
		key, err := os.ReadFile(opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to parse key file: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if len(auth) == 0 {
		return nil, fmt.Errorf("no password or key file for %s", dest)
	}

	hostKeys := ssh.InsecureIgnoreHostKey()
	if opts.KnownHosts != "" {
		cb, err := knownhosts.New(opts.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("failed to load known hosts: %w", err)
		}
		hostKeys = cb
	} else {
		logger.Warn("host key verification disabled", zap.String("host", dest.Host))
	}

	return &ssh.ClientConfig{
		User:            dest.Username,
		Auth:            auth,
		HostKeyCallback: hostKeys,
		Timeout:         opts.Timeout,
	}, nil
}

// DialSFTP connects to the destination's server, retrying failed dials.
func DialSFTP(ctx context.Context, dest Destination, opts SFTPOptions, logger *zap.Logger) (*SFTPTarget, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.applyDefaults()

	config, err := clientConfig(dest, opts, logger)
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(dest.Host, dest.Port)
	var sshClient *ssh.Client
	for attempt := 1; ; attempt++ {
		sshClient, err = dial(ctx, addr, config)
		if err == nil {
			break
		}
		logger.Warn("ssh dial failed",
			zap.String("addr", addr),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt > opts.Retries {
			return nil, fmt.Errorf("failed to connect to SSH server: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}

	logger.Info("connected", zap.String("destination", dest.String()))
	return &SFTPTarget{
		dir:        dest.Dir,
		sshClient:  sshClient,
		sftpClient: sftpClient,
		logger:     logger,
	}, nil
}

func dial(ctx context.Context, addr string, config *ssh.ClientConfig) (*ssh.Client, error) {
	d := net.Dialer{Timeout: config.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}

func (s *SFTPTarget) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.sftpClient.MkdirAll(s.dir); err != nil {
		return &TransferError{Path: s.dir, Operation: "create remote directory", Err: err}
	}

	remote := path.Join(s.dir, name)
	f, err := s.sftpClient.Create(remote)
	if err != nil {
		return &TransferError{Path: remote, Operation: "create remote file", Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &TransferError{Path: remote, Operation: "write", Err: err}
	}
	if err := f.Close(); err != nil {
		return &TransferError{Path: remote, Operation: "close remote file", Err: err}
	}
	return nil
}

func (s *SFTPTarget) Close() error {
	if err := s.sftpClient.Close(); err != nil {
		s.logger.Warn("error closing SFTP client", zap.Error(err))
	}
	if err := s.sshClient.Close(); err != nil {
		s.logger.Warn("error closing SSH client", zap.Error(err))
	}
	return nil
}
