package http

import (
	"encoding/json"
	"net/http"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/service"
)

type BranchHandler struct {
	branchSvc service.BranchService
}

func NewBranchHandler(branchSvc service.BranchService) *BranchHandler {
	return &BranchHandler{branchSvc: branchSvc}
}

type branchRequest struct {
	Name string `json:"name"`
}

func (h *BranchHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	branch := &domain.Branch{Name: req.Name}
	if err := h.branchSvc.AddBranch(r.Context(), branch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "branch created successfully", branch)
}

func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid branch id", nil)
		return
	}

	var req branchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	branch, err := h.branchSvc.UpdateBranch(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "branch updated successfully", branch)
}
