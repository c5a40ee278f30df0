// Copyright (c) 2025, the godriver authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gderrors "github.com/webdrivers/godriver/pkg/errors"
)

func TestGetReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("91.0.4472.101"))
	}))
	defer srv.Close()

	c := New()
	body, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "91.0.4472.101", body)
}

func TestGetNon2xxIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such release", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New()
	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, gderrors.IsNetwork(err), "non-2xx should classify as network error")
}

func TestGetTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close() // force connection refused

	c := New()
	_, err := c.Get(context.Background(), url)
	require.Error(t, err)
	assert.True(t, gderrors.IsNetwork(err), "refused connection should classify as network error")
}

func TestGetHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New()
	_, err := c.Get(ctx, srv.URL)
	require.Error(t, err)
	assert.False(t, gderrors.IsNetwork(err),
		"a canceled context is the caller's decision, not a transport failure")
	assert.ErrorIs(t, err, context.Canceled)
}
