package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/service"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

type bookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int32  `json:"publication_year"`
	Type            string `json:"type"`
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	book := &domain.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		Type:            req.Type,
	}
	if err := h.bookSvc.AddBook(r.Context(), book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "book added successfully", book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "bookId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid book id", nil)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	book, err := h.bookSvc.UpdateBook(r.Context(), id, &domain.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		Type:            req.Type,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "book updated successfully", book)
}

type inventoryRequest struct {
	BranchID          int32 `json:"branch_id"`
	TotalQuantity     int32 `json:"total_quantity"`
	AvailableQuantity int32 `json:"available_quantity"`
}

func (h *BookHandler) AddInventory(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid book id", nil)
		return
	}

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	entry, err := h.bookSvc.AddInventory(r.Context(), bookID, req.BranchID, req.TotalQuantity, req.AvailableQuantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "inventory entry created successfully", entry)
}

func (h *BookHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid book id", nil)
		return
	}

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	entry, err := h.bookSvc.UpdateInventory(r.Context(), bookID, req.BranchID, req.TotalQuantity, req.AvailableQuantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "inventory entry updated successfully", entry)
}

func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var year *int32
	if raw := q.Get("year"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, "invalid year", nil)
			return
		}
		y := int32(parsed)
		year = &y
	}

	results, err := h.bookSvc.SearchBooks(r.Context(), q.Get("title"), q.Get("author"), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "search successful", results)
}
