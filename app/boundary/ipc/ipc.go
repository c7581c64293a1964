// ipc パッケージは起動中のインスタンスへ指示を送る unix ソケットを提供します。
//
// 1接続につき改行終端の要求を1行読み、1行の応答を返して切断します。
package ipc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wasya-io/keycaster/app/entity/core"
)

const (
	RequestToggle = "toggle"

	ReplyOK        = "ok"
	ReplyUnknown   = "unknown request"
	replyErrPrefix = "error: "

	ioTimeout = 2 * time.Second
)

// ErrAlreadyRunning は別のインスタンスがソケットで待ち受けていることを示す
var ErrAlreadyRunning = errors.New("another instance is already running")

// DefaultSocketPath は XDG_RUNTIME_DIR、なければ一時ディレクトリのソケットパスを返す
func DefaultSocketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "keycaster.sock")
}

type Server struct {
	path     string
	logger   core.Logger
	listener net.Listener
	mutex    sync.RWMutex
	handlers map[string]func() error
	wg       sync.WaitGroup
	once     sync.Once
}

func NewServer(path string, logger core.Logger) *Server {
	return &Server{
		path:     path,
		logger:   logger,
		handlers: make(map[string]func() error),
	}
}

// Handle は要求名に対する処理を登録する
func (s *Server) Handle(request string, fn func() error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.handlers[request] = fn
}

// Listen はソケットを開く
// 応答のあるソケットが既にあれば ErrAlreadyRunning を返し、応答のないソケットは削除する
func (s *Server) Listen() error {
	if _, err := os.Stat(s.path); err == nil {
		conn, err := net.DialTimeout("unix", s.path, ioTimeout)
		if err == nil {
			conn.Close()
			return fmt.Errorf("%w: %s", ErrAlreadyRunning, s.path)
		}
		s.logger.Log("system", fmt.Sprintf("removing stale socket %s", s.path))
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.path, err)
	}
	s.listener = listener
	s.logger.Log("system", fmt.Sprintf("listening on %s", s.path))
	return nil
}

// Serve は ctx が終わるか Close されるまで接続を受け付ける
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	go func() {
		<-ctx.Done()
		s.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(conn)
		}()
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(ioTimeout))

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		s.logger.Log("warning", fmt.Sprintf("ipc read failed: %v", err))
		return
	}
	request := strings.TrimSpace(line)
	reply := s.dispatch(request)
	s.logger.Log("event", fmt.Sprintf("ipc request %q: %s", request, reply))

	if _, err := fmt.Fprintln(conn, reply); err != nil {
		s.logger.Log("warning", fmt.Sprintf("ipc write failed: %v", err))
	}
}

func (s *Server) dispatch(request string) string {
	s.mutex.RLock()
	fn, ok := s.handlers[request]
	s.mutex.RUnlock()
	if !ok {
		return ReplyUnknown
	}
	if err := fn(); err != nil {
		return replyErrPrefix + err.Error()
	}
	return ReplyOK
}

// Close は待ち受けを止めてソケットを削除する
func (s *Server) Close() error {
	var err error
	s.once.Do(func() {
		if s.listener == nil {
			return
		}
		err = s.listener.Close()
		// ソケットファイルが残っていれば消す
		if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	})
	return err
}

// Send は起動中のインスタンスに要求を送り、応答を返す
// 応答が "error: " で始まる場合はエラーとして返す
func Send(path, request string) (string, error) {
	conn, err := net.DialTimeout("unix", path, ioTimeout)
	if err != nil {
		return "", fmt.Errorf("no running instance at %s: %w", path, err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(ioTimeout))

	if _, err := fmt.Fprintln(conn, request); err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && reply == "" {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, replyErrPrefix) {
		return reply, errors.New(strings.TrimPrefix(reply, replyErrPrefix))
	}
	return reply, nil
}
