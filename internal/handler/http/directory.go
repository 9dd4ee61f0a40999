// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/models"
)

const (
	serverTitle = "go-taxii"

	// maxContentLength bounds request bodies and is advertised by every
	// API root.
	maxContentLength = 10 << 20
)

type discoveryResource struct {
	Title    string   `json:"title"`
	Default  string   `json:"default,omitempty"`
	APIRoots []string `json:"api_roots,omitempty"`
}

type apiRootResource struct {
	Title            string   `json:"title"`
	Description      *string  `json:"description,omitempty"`
	Versions         []string `json:"versions"`
	MaxContentLength int      `json:"max_content_length"`
}

type collectionsResource struct {
	Collections []models.CollectionView `json:"collections,omitempty"`
}

func apiRootURL(root models.APIRoot) string {
	return "/" + root.ID.String() + "/"
}

func (h *Handler) discovery(w http.ResponseWriter, r *http.Request) {
	roots, err := h.services.DirectoryService.ListAPIRoots(r.Context(), utils.PrincipalFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resource := discoveryResource{Title: serverTitle}
	for _, root := range roots {
		resource.APIRoots = append(resource.APIRoots, apiRootURL(root))
		if root.IsDefault {
			resource.Default = apiRootURL(root)
		}
	}

	h.writeTAXII(w, r, resource, http.StatusOK)
}

func (h *Handler) getAPIRoot(w http.ResponseWriter, r *http.Request) {
	apiRootID, err := apiRootParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	root, err := h.services.DirectoryService.GetAPIRoot(r.Context(), utils.PrincipalFromContext(r.Context()), apiRootID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeTAXII(w, r, apiRootResource{
		Title:            root.Title,
		Description:      root.Description,
		Versions:         []string{taxiiMediaType},
		MaxContentLength: maxContentLength,
	}, http.StatusOK)
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	apiRootID, err := apiRootParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	views, err := h.services.DirectoryService.ListCollections(r.Context(), utils.PrincipalFromContext(r.Context()), apiRootID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeTAXII(w, r, collectionsResource{Collections: views}, http.StatusOK)
}

func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	ref, err := collectionRef(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.services.DirectoryService.GetCollection(r.Context(), utils.PrincipalFromContext(r.Context()), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeTAXII(w, r, view, http.StatusOK)
}
