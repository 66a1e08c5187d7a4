/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code pferrors.ErrorCode
		want int
	}{
		{"invalid request", pferrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"invalid input", pferrors.ErrCodeInvalidInput, http.StatusBadRequest},
		{"unauthorized", pferrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"not found", pferrors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", pferrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", pferrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", pferrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", pferrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", pferrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", pferrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code pferrors.ErrorCode
		want bool
	}{
		{"invalid request", pferrors.ErrCodeInvalidRequest, false},
		{"unauthorized", pferrors.ErrCodeUnauthorized, false},
		{"not found", pferrors.ErrCodeNotFound, false},
		{"method not allowed", pferrors.ErrCodeMethodNotAllowed, false},
		{"timeout", pferrors.ErrCodeTimeout, true},
		{"unavailable", pferrors.ErrCodeUnavailable, true},
		{"rate limit", pferrors.ErrCodeRateLimitExceeded, true},
		{"internal", pferrors.ErrCodeInternal, true},
		{"unknown defaults false", pferrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got == nil {
			t.Fatal("expected map, got nil")
		}
		if got["a"].(int) != 1 {
			t.Fatalf("expected a=1, got %#v", got["a"])
		}
		if got["b"].(int) != 2 {
			t.Fatalf("expected b=2, got %#v", got["b"])
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
	})
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, pferrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(pferrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", pferrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false, got true")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusInternalServerError, pferrors.ErrCodeInternal, "boom", true, nil)

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.RequestID == "" {
		t.Fatal("expected a generated request ID")
	}
	if !resp.Retryable {
		t.Fatal("expected retryable=true")
	}
}

func TestWriteStructuredError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	err := pferrors.New(pferrors.ErrCodeNotFound, "template not found").WithDetail("did-you-mean", "Library Sign")
	WriteStructuredError(w, req, err)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != string(pferrors.ErrCodeNotFound) {
		t.Fatalf("code = %q", resp.Code)
	}
	if resp.Message != "template not found" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Details["did-you-mean"] != "Library Sign" {
		t.Fatalf("details = %#v", resp.Details)
	}
	if resp.Retryable {
		t.Fatal("NOT_FOUND must not be retryable")
	}
}
