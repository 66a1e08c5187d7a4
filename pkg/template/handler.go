/*
 * SPDX-FileCopyrightText: Copyright (c) 2026 PlateForge Authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package template

import (
	"net/http"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
	"github.com/plateforge/plateforge/pkg/serializer"
	"github.com/plateforge/plateforge/pkg/server"
)

// HandleTemplates serves GET /v1/templates. Filters: ?name= returns a
// single template, ?category= and ?pattern= narrow the list.
func (s *Store) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteStructuredError(w, r,
			pferrors.Newf(pferrors.ErrCodeMethodNotAllowed, "method %s not allowed", r.Method))
		return
	}

	q := r.URL.Query()

	if name := q.Get("name"); name != "" {
		t, err := s.Get(name)
		if err != nil {
			server.WriteStructuredError(w, r, err)
			return
		}
		serializer.RespondJSON(w, http.StatusOK, t)
		return
	}

	var templates []Template
	switch {
	case q.Get("category") != "":
		templates = s.ByCategory(q.Get("category"))
	case q.Get("pattern") != "":
		templates = s.Match(q.Get("pattern"))
	default:
		templates = s.All()
	}

	resp := struct {
		Templates []Template `json:"templates" yaml:"templates"`
		Count     int        `json:"count" yaml:"count"`
	}{Templates: templates, Count: len(templates)}
	serializer.RespondJSON(w, http.StatusOK, resp)
}
