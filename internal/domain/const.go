package domain

const (
	// Referral tree constants
	MAX_REFERRAL_DEPTH   = 3
	ANCESTOR_SCAN_LIMIT  = 10
	REFERRAL_CODE_LENGTH = 8

	// Ledger constants
	AMOUNT_DECIMALS       = 8
	TREASURY_BENEFICIARY  = "TREASURY"
	TRADE_IDEMPOTENCY_KEY = "trade:%s"
	ROOT_CURSOR_KEY       = "root_cursor:%s:%s"
	ROOT_CLAIM_CURSOR_KEY = "root_claim_cursor:%s:%s"

	// Merkle constants
	ZERO_ROOT = "0x0000000000000000000000000000000000000000000000000000000000000000"
)
