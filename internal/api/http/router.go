package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every API route. Book and branch mutations are restricted
// to librarians; search is public; loan operations need an authenticated
// caller.
func NewRouter(
	auth *Authenticator,
	userHandler *UserHandler,
	bookHandler *BookHandler,
	branchHandler *BranchHandler,
	loanHandler *LoanHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)

	api := r.PathPrefix("/api").Subrouter()

	// Users
	api.HandleFunc("/users", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", auth.RequireAuth(userHandler.Get)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", auth.RequireAuth(userHandler.UpdatePassword)).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id:[0-9]+}", auth.RequireLibrarian(userHandler.Delete)).Methods(http.MethodDelete)

	// Books
	api.HandleFunc("/books/search", bookHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/books", auth.RequireLibrarian(bookHandler.Add)).Methods(http.MethodPost)
	api.HandleFunc("/books/{bookId:[0-9]+}", auth.RequireLibrarian(bookHandler.Update)).Methods(http.MethodPut)
	api.HandleFunc("/books/{bookId:[0-9]+}/inventory", auth.RequireLibrarian(bookHandler.AddInventory)).Methods(http.MethodPost)
	api.HandleFunc("/books/{bookId:[0-9]+}/inventory", auth.RequireLibrarian(bookHandler.UpdateInventory)).Methods(http.MethodPut)

	// Branches
	api.HandleFunc("/branches", auth.RequireLibrarian(branchHandler.Add)).Methods(http.MethodPost)
	api.HandleFunc("/branches/{id:[0-9]+}", auth.RequireLibrarian(branchHandler.Update)).Methods(http.MethodPut)

	// Loans
	api.HandleFunc("/loans/borrow", auth.RequireAuth(loanHandler.Borrow)).Methods(http.MethodPost)
	api.HandleFunc("/loans/return", auth.RequireAuth(loanHandler.Return)).Methods(http.MethodPost)
	api.HandleFunc("/loans/notify-due-soon", auth.RequireLibrarian(loanHandler.NotifyDueSoon)).Methods(http.MethodGet)

	return r
}
