/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddbgateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func httpTestServer(t *testing.T, h http.Handler) string {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts.URL
}
