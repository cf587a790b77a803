package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vkarpale/wagerhall/docs"
	authhandlers "github.com/vkarpale/wagerhall/internal/handlers/auth"
	bethandlers "github.com/vkarpale/wagerhall/internal/handlers/bets"
	bonushandlers "github.com/vkarpale/wagerhall/internal/handlers/bonuses"
	paymenthandlers "github.com/vkarpale/wagerhall/internal/handlers/payments"
	"github.com/vkarpale/wagerhall/internal/service"
	"github.com/vkarpale/wagerhall/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type BetHandler interface {
	PlaceBet(w http.ResponseWriter, r *http.Request)
	GetGames(w http.ResponseWriter, r *http.Request)
	GetBets(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	VerifyDeposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	AuditBalance(w http.ResponseWriter, r *http.Request)
}

type BonusHandler interface {
	CreateBonus(w http.ResponseWriter, r *http.Request)
	GetMyBonuses(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BetHandler     BetHandler
	PaymentHandler PaymentHandler
	BonusHandler   BonusHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BetHandler:     bethandlers.New(s.BetService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		BonusHandler:   bonushandlers.New(s.BonusService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/profile", h.AuthHandler.GetProfile)
				r.Put("/profile", h.AuthHandler.UpdateProfile)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/bets", func(r chi.Router) {
				r.Post("/", h.BetHandler.PlaceBet)
				r.Get("/", h.BetHandler.GetBets)
				r.Get("/games", h.BetHandler.GetGames)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Post("/deposit/create", h.PaymentHandler.CreateDeposit)
				r.Post("/deposit/verify", h.PaymentHandler.VerifyDeposit)
				r.Post("/withdrawal", h.PaymentHandler.Withdraw)
				r.Get("/", h.PaymentHandler.GetTransactions)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Get("/audit/{userID}", h.PaymentHandler.AuditBalance)
				})
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Get("/my-bonuses", h.BonusHandler.GetMyBonuses)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/create", h.BonusHandler.CreateBonus)
				})
			})
		})
	})

	return r
}
