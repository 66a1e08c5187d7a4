/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package report

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/plateforge/plateforge/pkg/constraint"
	"github.com/plateforge/plateforge/pkg/design"
	pferrors "github.com/plateforge/plateforge/pkg/errors"
	"github.com/plateforge/plateforge/pkg/serializer"
	"github.com/plateforge/plateforge/pkg/server"
)

// numericQueryFields are the design fields parsed as numbers from
// query parameters; everything else known is free text.
var numericQueryFields = map[string]bool{
	design.FieldPlateLength:    true,
	design.FieldPlateWidth:     true,
	design.FieldPlateThickness: true,
	design.FieldLetterDepth:    true,
	design.FieldTextSize:       true,
	design.FieldLineSpacing:    true,
}

var textQueryFields = map[string]bool{
	design.FieldTextLine1: true,
	design.FieldTextLine2: true,
	design.FieldFont:      true,
	design.FieldMaterial:  true,
	design.FieldFinish:    true,
}

// DesignFromQuery builds a design from URL query parameters. Unknown
// parameters and malformed numbers are rejected; unknown names get a
// closest-match suggestion when one is plausible.
func DesignFromQuery(values url.Values) (design.Config, error) {
	cfg := make(design.Config, len(values))
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		switch {
		case numericQueryFields[key]:
			f, err := strconv.ParseFloat(vals[0], 64)
			if err != nil {
				return nil, pferrors.Newf(pferrors.ErrCodeInvalidRequest,
					"parameter %q is not numeric (got %q)", key, vals[0])
			}
			cfg[key] = f
		case textQueryFields[key]:
			cfg[key] = vals[0]
		default:
			err := pferrors.Newf(pferrors.ErrCodeInvalidRequest, "unknown parameter %q", key)
			if suggestion := constraint.Suggest(key); suggestion != "" {
				err = err.WithDetail("did-you-mean", suggestion)
			}
			return nil, err
		}
	}
	return cfg, nil
}

// designFromRequest extracts a design from a GET query or a POST JSON
// body.
func designFromRequest(r *http.Request) (design.Config, error) {
	switch r.Method {
	case http.MethodGet:
		return DesignFromQuery(r.URL.Query())
	case http.MethodPost:
		var cfg design.Config
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			return nil, pferrors.Wrap(pferrors.ErrCodeInvalidRequest, "invalid JSON design body", err)
		}
		return cfg, nil
	default:
		return nil, pferrors.Newf(pferrors.ErrCodeMethodNotAllowed, "method %s not allowed", r.Method)
	}
}

// HandleValidate serves GET and POST /v1/validate: a full validation
// report for the submitted design.
func (g *Aggregator) HandleValidate(w http.ResponseWriter, r *http.Request) {
	cfg, err := designFromRequest(r)
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	rep, err := g.Build(cfg)
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, rep)
}

// HandleScore serves GET and POST /v1/score: just the quality score
// for the submitted design.
func (g *Aggregator) HandleScore(w http.ResponseWriter, r *http.Request) {
	cfg, err := designFromRequest(r)
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	rep, err := g.Build(cfg)
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	resp := struct {
		Score   int  `json:"score" yaml:"score"`
		IsValid bool `json:"is_valid" yaml:"is_valid"`
	}{Score: rep.Score, IsValid: rep.IsValid}
	serializer.RespondJSON(w, http.StatusOK, resp)
}

func writeHandlerError(w http.ResponseWriter, r *http.Request, err error) {
	if pferrors.IsCode(err, pferrors.ErrCodeMethodNotAllowed) {
		w.Header().Set("Allow", "GET, POST")
	}
	server.WriteStructuredError(w, r, err)
}
