package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	BetStatusPending   = "pending"
	BetStatusWon       = "won"
	BetStatusLost      = "lost"
	BetStatusCancelled = "cancelled"
)

const (
	TxnTypeDeposit    = "deposit"
	TxnTypeWithdrawal = "withdrawal"
	TxnTypeBet        = "bet"
	TxnTypeWin        = "win"
	TxnTypeBonus      = "bonus"
)

const (
	TxnStatusPending   = "pending"
	TxnStatusCompleted = "completed"
	TxnStatusFailed    = "failed"
	TxnStatusCancelled = "cancelled"
)

const (
	BonusTypeSignup   = "signup"
	BonusTypeDeposit  = "deposit"
	BonusTypeReferral = "referral"
	BonusTypeLoyalty  = "loyalty"
)

const (
	BonusStatusActive  = "active"
	BonusStatusUsed    = "used"
	BonusStatusExpired = "expired"
)

type User struct {
	ID           string          `db:"id"`
	Username     string          `db:"username"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	Balance      decimal.Decimal `db:"balance"`
	Role         string          `db:"role"`
	IsVerified   bool            `db:"is_verified"`
	LastLoginAt  *time.Time      `db:"last_login_at"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Bet is immutable once written: status is set to its terminal value at
// creation time inside the settlement transaction.
type Bet struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Amount     decimal.Decimal `db:"amount"`
	GameType   string          `db:"game_type"`
	BetDetails json.RawMessage `db:"bet_details"`
	Outcome    string          `db:"outcome"`
	Payout     decimal.Decimal `db:"payout"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Transaction is an append-only ledger entry. Amount is signed: debits are
// negative, credits are positive.
type Transaction struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	PaymentID     string          `db:"payment_id"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Bonus struct {
	ID                  string          `db:"id"`
	UserID              string          `db:"user_id"`
	Amount              decimal.Decimal `db:"amount"`
	Type                string          `db:"type"`
	Description         string          `db:"description"`
	Status              string          `db:"status"`
	WageringRequirement decimal.Decimal `db:"wagering_requirement"`
	WageringRemaining   decimal.Decimal `db:"wagering_remaining"`
	ExpiresAt           time.Time       `db:"expires_at"`
	CreatedAt           time.Time       `db:"created_at"`
}
