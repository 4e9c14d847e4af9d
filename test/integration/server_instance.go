package integration

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/alerts"
	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/config"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/endpoints"
)

// syncBuffer is a bytes.Buffer that may be written by the server while the
// steps read it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// ServerInstance is an in-process server for a single scenario.
type ServerInstance struct {
	Server    *server.Server
	Records   *records.Store
	ServerURL string
	Audit     *syncBuffer

	listener net.Listener
	done     chan struct{}
}

// StartServer serves data on a free loopback port. Ages are computed as of
// today.
func StartServer(data model.Dataset, today time.Time) (*ServerInstance, error) {
	cfg := config.Default()
	cfg.BindAddress = "127.0.0.1"
	cfg.AccessLog = false

	rs := records.New(data)
	engine := alerts.NewEngine(rs, alerts.WithClock(func() time.Time { return today }))

	auditLog := &syncBuffer{}
	s := server.NewServer(cfg, server.NewStores(rs, engine), zap.NewNop(), audit.NewLogger(auditLog))
	endpoints.RegisterAll(s)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	instance := &ServerInstance{
		Server:    s,
		Records:   rs,
		ServerURL: "http://" + listener.Addr().String(),
		Audit:     auditLog,
		listener:  listener,
		done:      make(chan struct{}),
	}

	go func() {
		defer close(instance.done)
		_ = s.Serve(listener)
	}()

	if err := waitForServer(instance.ServerURL, 5*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}
	return instance, nil
}

// Stop shuts the server down and waits for Serve to return.
func (si *ServerInstance) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = si.Server.Shutdown(ctx)
	<-si.done
}

// waitForServer polls the status endpoint until it responds or times out.
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	return fmt.Errorf("timed out after %s", timeout)
}
