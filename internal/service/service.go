package service

import (
	"github.com/vkarpale/wagerhall/internal/bonusqueue"
	"github.com/vkarpale/wagerhall/internal/cache"
	"github.com/vkarpale/wagerhall/internal/gateway"
	"github.com/vkarpale/wagerhall/internal/handlers/auth"
	"github.com/vkarpale/wagerhall/internal/handlers/bets"
	"github.com/vkarpale/wagerhall/internal/handlers/bonuses"
	"github.com/vkarpale/wagerhall/internal/handlers/payments"
	"github.com/vkarpale/wagerhall/internal/pg"
	"github.com/vkarpale/wagerhall/internal/repo"
	"github.com/vkarpale/wagerhall/internal/service/authservice"
	"github.com/vkarpale/wagerhall/internal/service/betservice"
	"github.com/vkarpale/wagerhall/internal/service/bonusservice"
	"github.com/vkarpale/wagerhall/internal/service/paymentservice"
	pkgauth "github.com/vkarpale/wagerhall/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	BetService     bets.Service
	PaymentService payments.Service
	BonusService   bonuses.Service

	// BonusEngine is the same bonus service behind BonusService, exposed
	// with the wider surface the queue worker drives.
	BonusEngine bonusqueue.BonusService
}

func New(repos *repo.Repositories, txManager pg.TXManager, gw *gateway.Client, redis *cache.RedisService, queue *bonusqueue.Queue) *Services {
	bonusService := bonusservice.New(repos.BonusRepo, repos.UserRepo, repos.TransactionRepo, txManager, redis)
	betService := betservice.New(repos.UserRepo, repos.BetRepo, repos.TransactionRepo, txManager, queue)
	paymentService := paymentservice.New(repos.UserRepo, repos.TransactionRepo, gw, redis, txManager, queue)
	authService := authservice.New(repos.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, queue)

	return &Services{
		AuthService:    authService,
		BetService:     betService,
		PaymentService: paymentService,
		BonusService:   bonusService,
		BonusEngine:    bonusService,
	}
}
