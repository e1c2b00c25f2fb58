package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"librarysystem-backend/internal/service"
)

type LoanHandler struct {
	loanSvc service.LoanService
}

func NewLoanHandler(loanSvc service.LoanService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc}
}

type borrowRequest struct {
	UserID   int32 `json:"user_id"`
	BookID   int32 `json:"book_id"`
	BranchID int32 `json:"branch_id"`
}

func (h *LoanHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.loanSvc.BorrowBook(r.Context(), req.UserID, req.BookID, req.BranchID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "book borrowed successfully", nil)
}

type returnRequest struct {
	LoanID int32 `json:"loan_id"`
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.loanSvc.ReturnBook(r.Context(), req.LoanID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "book returned successfully", nil)
}

// NotifyDueSoon is the manual trigger for the due-soon scan; the cron runner
// invokes the same service operation on schedule.
func (h *LoanHandler) NotifyDueSoon(w http.ResponseWriter, r *http.Request) {
	count, err := h.loanSvc.NotifyDueSoon(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fmt.Sprintf("notifications sent: %d", count), nil)
}
