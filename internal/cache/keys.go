package cache

import "time"

const (
	KeyDepositConfirm = "deposit:confirm:%s"
	KeyBonusIssue     = "bonus:issue:%s"

	TTLDepositConfirm = 24 * time.Hour
	TTLBonusIssue     = 24 * time.Hour
)
