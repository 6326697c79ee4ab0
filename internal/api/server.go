package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sam44cordeiro/backend-financeiro/internal/models"
	"github.com/sam44cordeiro/backend-financeiro/internal/store"
	"github.com/sam44cordeiro/backend-financeiro/internal/utils"
)

// UserStore is the credential store consumed by the signup and login
// handlers.
type UserStore interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// TransactionStore is the ledger consumed by the transaction handlers.
type TransactionStore interface {
	Add(ctx context.Context, userID int64, title string, value float64, txType string) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type Server struct {
	users        UserStore
	transactions TransactionStore
	router       *chi.Mux
	logger       *zap.Logger
}

func NewServer(users UserStore, transactions TransactionStore, logger *zap.Logger) *Server {
	return &Server{
		users:        users,
		transactions: transactions,
		router:       chi.NewRouter(),
		logger:       logger,
	}
}

func (s *Server) Start(addr string) error {
	// Set up routes before starting the server
	s.router = s.RegisterRoutes()
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			s.writeError(w, http.StatusBadRequest, "E-mail já cadastrado.")
			return
		}
		s.logger.Error("Error signing up user", zap.String("email", req.Email), zap.Error(err))
		http.Error(w, "Erro no servidor", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, user)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			s.writeError(w, http.StatusBadRequest, "Usuário não encontrado.")
		case errors.Is(err, store.ErrInvalidPassword):
			s.writeError(w, http.StatusBadRequest, "Senha incorreta.")
		default:
			s.logger.Error("Error logging in user", zap.String("email", req.Email), zap.Error(err))
			http.Error(w, "Erro no servidor", http.StatusInternalServerError)
		}
		return
	}

	s.writeJSON(w, user)
}

func (s *Server) addTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	transaction, err := s.transactions.Add(r.Context(), req.UserID, req.Title, req.Value, req.Type)
	if err != nil {
		s.logger.Error("Error saving transaction", zap.Int64("user_id", req.UserID), zap.Error(err))
		http.Error(w, "Erro ao salvar transação", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, transaction)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromPath(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	transactions, err := s.transactions.ListByUser(r.Context(), userID)
	if err != nil {
		s.logger.Error("Error listing transactions", zap.Int64("user_id", userID), zap.Error(err))
		http.Error(w, "Erro ao buscar transações", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, transactions)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Error encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
