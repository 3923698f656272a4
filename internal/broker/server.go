package broker

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/RucksP/slippi-launcher/internal/config"
	"github.com/RucksP/slippi-launcher/internal/credentials"
	"github.com/RucksP/slippi-launcher/internal/dolphin"
	"github.com/RucksP/slippi-launcher/internal/logging"
	"github.com/RucksP/slippi-launcher/internal/settings"
)

// Server dispatches broker requests to the launcher's services.
type Server struct {
	settings  *settings.Service
	creds     *credentials.Store
	launcher  *dolphin.Launcher
	installer *dolphin.Installer
	cfg       *config.Config
	log       *slog.Logger
}

// NewServer wires a broker over the given services.
func NewServer(svc *settings.Service, creds *credentials.Store, launcher *dolphin.Launcher, installer *dolphin.Installer, cfg *config.Config) *Server {
	return &Server{
		settings:  svc,
		creds:     creds,
		launcher:  launcher,
		installer: installer,
		cfg:       cfg,
		log:       logging.With("component", "broker"),
	}
}

// ListenAndServe serves on a Unix socket until ctx is done. A stale socket
// file from a previous run is removed first.
func (s *Server) ListenAndServe(ctx context.Context, socketPath string) error {
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove stale socket: %w", err)
	}

	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", socketPath, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections until ctx is done or the listener fails.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	context.AfterFunc(ctx, func() { ln.Close() })

	var wg sync.WaitGroup
	defer wg.Wait()

	s.log.Info("broker listening", "addr", ln.Addr().String())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConn(conn)
		}()
	}
}

// handleConn processes requests on one connection, one JSON line each.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	enc := json.NewEncoder(conn)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		var resp Response
		if err := json.Unmarshal(line, &req); err != nil {
			resp = errResponse(fmt.Errorf("malformed request: %w", err))
		} else {
			s.log.Debug("broker request", "op", req.Op)
			resp = s.dispatch(req)
		}

		if err := enc.Encode(resp); err != nil {
			s.log.Warn("broker write failed", "error", err)
			return
		}
	}
}

// dispatch routes one request to its operation.
func (s *Server) dispatch(req Request) Response {
	switch req.Op {
	case OpSettingsGet:
		value, err := s.settings.GetKey(req.File, req.Section, req.Key, req.Default)
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		resp.Value = value
		return resp

	case OpSettingsSet:
		if err := s.settings.SetKey(req.File, req.Section, req.Key, req.Value); err != nil {
			return errResponse(err)
		}
		return okResponse()

	case OpSettingsKeys:
		keys, err := s.settings.GetKeys(req.File, req.Section)
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		resp.Keys = keys
		return resp

	case OpSettingsDeleteKey:
		removed, err := s.settings.DeleteKey(req.File, req.Section, req.Key)
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		resp.Removed = removed
		return resp

	case OpSettingsGetLines:
		lines, err := s.settings.GetLines(req.File, req.Section, false)
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		resp.Lines = lines
		return resp

	case OpSettingsSetLines:
		if err := s.settings.SetLines(req.File, req.Section, req.Lines); err != nil {
			return errResponse(err)
		}
		return okResponse()

	case OpCodesList:
		codes, err := s.settings.ListCodes(req.Game)
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		for _, code := range codes {
			resp.Codes = append(resp.Codes, CodeInfo{Name: code.Name, Enabled: code.Enabled})
		}
		return resp

	case OpCodesEnable, OpCodesDisable:
		enable := req.Op == OpCodesEnable
		if err := s.settings.SetCodeEnabled(req.Game, req.Code, enable); err != nil {
			return errResponse(err)
		}
		return okResponse()

	case OpCredentialsGet:
		user, err := s.creds.Load()
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		resp.User = &UserInfo{
			UID:         user.UID,
			ConnectCode: user.ConnectCode,
			DisplayName: user.DisplayName,
		}
		return resp

	case OpLaunch:
		iso := req.ISOPath
		if iso == "" {
			iso = s.cfg.ISOPath
		}
		pid, err := s.launcher.Launch(dolphin.LaunchOptions{
			ISOPath:   iso,
			ExtraArgs: s.cfg.LaunchArgs,
		})
		if err != nil {
			return errResponse(err)
		}
		resp := okResponse()
		resp.PID = pid
		return resp

	case OpVersion:
		resp := okResponse()
		resp.Version = s.installer.InstalledVersion()
		return resp

	default:
		return errResponse(fmt.Errorf("unknown op %q", req.Op))
	}
}
