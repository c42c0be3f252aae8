/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddbgateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/ddbgateway"
	"github.com/suparena/ddbgateway/config"
	"github.com/suparena/ddbgateway/datastore/mock"
	"github.com/suparena/ddbgateway/storagemodels"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// syncBuffer guards a bytes.Buffer shared between the server goroutine and the test.
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

func TestServerServesAndShutsDown(t *testing.T) {
	cfg := config.Default()
	logs := &syncBuffer{}
	logger := config.NewLogger(cfg, logs)

	scanner := mock.New().WithTable(cfg.TableName,
		storagemodels.Record{"id": "1"},
		storagemodels.Record{"id": "2"},
		storagemodels.Record{"id": "3"},
	)
	srv := ddbgateway.NewServer(cfg, scanner, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/testdb", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, true, payload["success"])
	data := payload["data"].(map[string]any)
	assert.Len(t, data["Items"], 3)

	assert.Contains(t, logs.String(), fmt.Sprintf("Backend app running on port %d", port))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, strings.Contains(logs.String(), "shutting down"))
}

func TestServerHandlerUsesConfiguredTable(t *testing.T) {
	cfg := config.Default()
	cfg.TableName = "orders"
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	scanner := mock.New().WithTable("orders")
	srv := ddbgateway.NewServer(cfg, scanner, logger)

	ts := httpTestServer(t, srv.Handler())
	resp, err := http.Get(ts + "/testdb")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"orders"}, scanner.Calls())
}

func TestListenAndServeReportsBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Default()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv := ddbgateway.NewServer(cfg, mock.New(), logger)
	err = srv.ListenAndServe(context.Background())
	assert.Error(t, err)
}

func TestGetVersionInfo(t *testing.T) {
	info := ddbgateway.GetVersionInfo()
	assert.Equal(t, ddbgateway.Version, info.Version)

	var buf bytes.Buffer
	info.Print(&buf)
	assert.Contains(t, buf.String(), "ddbgateway version "+ddbgateway.Version)
	assert.Contains(t, buf.String(), "Git commit: ")
}
