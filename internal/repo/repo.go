package repo

import (
	"github.com/vkarpale/wagerhall/internal/pg"
	betrepo "github.com/vkarpale/wagerhall/internal/repo/bet-repo"
	bonusrepo "github.com/vkarpale/wagerhall/internal/repo/bonus-repo"
	transactionrepo "github.com/vkarpale/wagerhall/internal/repo/transaction-repo"
	userrepo "github.com/vkarpale/wagerhall/internal/repo/user-repo"
)

// Repositories bundles the ledger store. Several services share the user and
// transaction repositories, so fields carry the concrete types and each
// service narrows them to its own interface.
type Repositories struct {
	UserRepo        *userrepo.Repository
	BetRepo         *betrepo.Repository
	TransactionRepo *transactionrepo.Repository
	BonusRepo       *bonusrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		BetRepo:         betrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		BonusRepo:       bonusrepo.New(conn),
	}
}
