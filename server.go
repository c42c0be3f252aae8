/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddbgateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/suparena/ddbgateway/config"
	"github.com/suparena/ddbgateway/datastore"
	"github.com/suparena/ddbgateway/datastore/ddb"
	"github.com/suparena/ddbgateway/httpapi"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server ties a Scanner to the HTTP router for the lifetime of the process.
type Server struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpServer *http.Server
}

// NewServer wires the router around scanner. cfg must already be validated.
func NewServer(cfg *config.Config, scanner datastore.Scanner, logger *logrus.Logger) *Server {
	router := httpapi.NewRouter(scanner, cfg.TableName, logger)
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewDynamoDBServer builds the DynamoDB client and scan gateway from cfg and
// wires them into a Server.
func NewDynamoDBServer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{
		Region:       cfg.Region,
		AccessKey:    cfg.AccessKey,
		SecretKey:    cfg.SecretKey,
		SessionToken: cfg.SessionToken,
		Endpoint:     cfg.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"table":  cfg.TableName,
		"region": cfg.Region,
	}).Info("DynamoDB client initialized")

	gateway := ddb.NewScanGateway(client,
		ddb.WithScanLimit(cfg.ScanLimit),
		ddb.WithConsistentRead(cfg.ConsistentRead),
		ddb.WithLogger(logger),
	)
	return NewServer(cfg, gateway, logger), nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe binds the configured port and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests. The startup line is logged once the listener is bound.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	port := s.cfg.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	s.logger.Infof("Backend app running on port %d", port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
