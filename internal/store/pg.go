package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-referral/internal/domain"
	"github.com/feral-file/ff-referral/internal/store/schema"
)

// ErrVersionConflict is returned when a concurrent writer stored the same root version first
var ErrVersionConflict = errors.New("merkle root version conflict")

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's limit of 65535 bind parameters per statement.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ensureUser inserts a user row unless it already exists
func ensureUser(tx *gorm.DB, userID string, cashbackRate decimal.Decimal) error {
	user := schema.User{ID: userID, CashbackRate: cashbackRate}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&user).Error; err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id
func (s *pgStore) GetUser(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// EnsureUser creates the user if missing and returns the stored row
func (s *pgStore) EnsureUser(ctx context.Context, userID string, cashbackRate decimal.Decimal) (*schema.User, error) {
	if err := ensureUser(s.db.WithContext(ctx), userID, cashbackRate); err != nil {
		return nil, err
	}

	var user schema.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetCashbackRate returns the cashback rate of a user, fallback if unknown
func (s *pgStore) GetCashbackRate(ctx context.Context, userID string, fallback decimal.Decimal) (decimal.Decimal, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if user == nil {
		return fallback, nil
	}
	return user.CashbackRate, nil
}

// GetUserByReferralCode retrieves the owner of a referral code
func (s *pgStore) GetUserByReferralCode(ctx context.Context, code string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("referral_code = ?", code).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by referral code: %w", err)
	}
	return &user, nil
}

// SetReferralCode assigns a code to a user without one
func (s *pgStore) SetReferralCode(ctx context.Context, userID string, code string) (bool, error) {
	// run in its own transaction so a unique violation only rolls back this update
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&schema.User{}).
			Where("id = ? AND referral_code IS NULL", userID).
			Updates(map[string]any{
				"referral_code": code,
				"updated_at":    time.Now(),
			}).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to set referral code: %w", err)
	}
	return true, nil
}

// GetReferrer returns the referrer of a user
func (s *pgStore) GetReferrer(ctx context.Context, userID string) (*string, error) {
	var link schema.ReferralLink
	err := s.db.WithContext(ctx).Where("referee_id = ?", userID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referrer: %w", err)
	}
	return &link.ReferrerID, nil
}

// GetAncestors walks up the referral tree with at most maxLevels lookups
func (s *pgStore) GetAncestors(ctx context.Context, userID string, maxLevels int) ([]string, error) {
	ancestors := make([]string, 0, maxLevels)
	visited := map[string]struct{}{userID: {}}

	current := userID
	for len(ancestors) < maxLevels {
		referrer, err := s.GetReferrer(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to get ancestors: %w", err)
		}
		if referrer == nil {
			break
		}

		ancestors = append(ancestors, *referrer)
		if _, seen := visited[*referrer]; seen {
			break
		}
		visited[*referrer] = struct{}{}
		current = *referrer
	}

	return ancestors, nil
}

// GetDirectReferees returns the links whose referrer is one of userIDs
func (s *pgStore) GetDirectReferees(ctx context.Context, userIDs []string) ([]schema.ReferralLink, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var links []schema.ReferralLink
	err := s.db.WithContext(ctx).
		Where("referrer_id IN ?", userIDs).
		Order("created_at ASC, referee_id ASC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get direct referees: %w", err)
	}
	return links, nil
}

// CreateReferralLink stores a link; the referee primary key makes the link write-once
func (s *pgStore) CreateReferralLink(ctx context.Context, input CreateReferralLinkInput) (*schema.ReferralLink, error) {
	link := schema.ReferralLink{
		RefereeID:  input.RefereeID,
		ReferrerID: input.ReferrerID,
		Level:      input.Level,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, input.ReferrerID, input.DefaultCashbackRate); err != nil {
			return err
		}
		if err := ensureUser(tx, input.RefereeID, input.DefaultCashbackRate); err != nil {
			return err
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "referee_id"}},
			DoNothing: true,
		}).Create(&link)
		if result.Error != nil {
			return fmt.Errorf("failed to create referral link: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrReferrerAlreadySet
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// SumClaimableByBeneficiary sums claimable ledger entries per beneficiary for a chain and token
func (s *pgStore) SumClaimableByBeneficiary(ctx context.Context, chain domain.Chain, token string) (map[string]decimal.Decimal, error) {
	var rows []struct {
		BeneficiaryID string
		Amount        decimal.Decimal
	}

	err := s.db.WithContext(ctx).
		Table("commission_ledger_entries AS e").
		Select("e.beneficiary_id, SUM(e.amount) AS amount").
		Joins("JOIN trades t ON t.id = e.source_trade_id").
		Where("e.destination = ? AND e.token = ? AND t.chain = ?", domain.DestinationClaimable, token, chain).
		Group("e.beneficiary_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum claimable entries: %w", err)
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		sums[r.BeneficiaryID] = r.Amount
	}
	return sums, nil
}

// SumByBeneficiaryAndLevel sums a beneficiary's entries per token and level
func (s *pgStore) SumByBeneficiaryAndLevel(ctx context.Context, beneficiaryID string) ([]domain.Earning, error) {
	var earnings []domain.Earning
	err := s.db.WithContext(ctx).
		Model(&schema.CommissionLedgerEntry{}).
		Select("token, level, SUM(amount) AS amount").
		Where("beneficiary_id = ?", beneficiaryID).
		Group("token, level").
		Order("token ASC, level ASC").
		Scan(&earnings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum earnings: %w", err)
	}
	return earnings, nil
}

// SumByBeneficiaryAndSourceTrade sums a beneficiary's entries for one trade
func (s *pgStore) SumByBeneficiaryAndSourceTrade(ctx context.Context, beneficiaryID string, tradeID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.WithContext(ctx).
		Model(&schema.CommissionLedgerEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("beneficiary_id = ? AND source_trade_id = ?", beneficiaryID, tradeID).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum trade commission: %w", err)
	}
	return total, nil
}

// GetEntriesByTrade returns the entries of a trade ordered by level
func (s *pgStore) GetEntriesByTrade(ctx context.Context, tradeID string) ([]schema.CommissionLedgerEntry, error) {
	var entries []schema.CommissionLedgerEntry
	err := s.db.WithContext(ctx).
		Where("source_trade_id = ?", tradeID).
		Order("level ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

// GetLatestEntryID returns the highest ledger entry id for a chain and token
func (s *pgStore) GetLatestEntryID(ctx context.Context, chain domain.Chain, token string) (uint64, error) {
	var id uint64
	err := s.db.WithContext(ctx).
		Table("commission_ledger_entries AS e").
		Select("COALESCE(MAX(e.id), 0)").
		Joins("JOIN trades t ON t.id = e.source_trade_id").
		Where("e.token = ? AND t.chain = ?", token, chain).
		Row().Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest ledger entry: %w", err)
	}
	return id, nil
}

// IdempotencyKeyExists reports whether the key was consumed
func (s *pgStore) IdempotencyKeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.KeyValueStore{}).
		Where("key = ?", key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	return count > 0, nil
}

// GetTrade retrieves a trade by id
func (s *pgStore) GetTrade(ctx context.Context, tradeID string) (*schema.Trade, error) {
	var trade schema.Trade
	err := s.db.WithContext(ctx).Where("id = ?", tradeID).First(&trade).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return &trade, nil
}

// ListTradesByUser lists the trades of a user, newest first
func (s *pgStore) ListTradesByUser(ctx context.Context, userID string, limit int, offset int) ([]schema.Trade, error) {
	var trades []schema.Trade
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("traded_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// ApplyTrade consumes the idempotency key and appends the trade with its ledger entries in one transaction
func (s *pgStore) ApplyTrade(ctx context.Context, input ApplyTradeInput) (bool, error) {
	applied := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Consume the idempotency key; a concurrent holder blocks us until it commits
		kv := schema.KeyValueStore{
			Key:   input.IdempotencyKey,
			Value: input.Trade.ID,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&kv)
		if result.Error != nil {
			return fmt.Errorf("failed to consume idempotency key: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		// 2. Make sure the trader exists
		if err := ensureUser(tx, input.Trade.UserID, input.DefaultCashbackRate); err != nil {
			return err
		}

		// 3. Record the trade
		trade := input.Trade
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&trade).Error; err != nil {
			return fmt.Errorf("failed to create trade: %w", err)
		}

		// 4. Append the ledger entries, skipping rows a partial earlier attempt may have left
		if len(input.Entries) > 0 {
			entries := make([]schema.CommissionLedgerEntry, len(input.Entries))
			copy(entries, input.Entries)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "beneficiary_id"}, {Name: "source_trade_id"}, {Name: "level"}},
				DoNothing: true,
			}).CreateInBatches(&entries, calculateSafeBatchSize(len(entries), 8)).Error; err != nil {
				return fmt.Errorf("failed to append ledger entries: %w", err)
			}
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

// GetLatestRoot returns the highest version root for a chain and token
func (s *pgStore) GetLatestRoot(ctx context.Context, chain domain.Chain, token string) (*schema.MerkleRoot, error) {
	var root schema.MerkleRoot
	err := s.db.WithContext(ctx).
		Where("chain = ? AND token = ?", chain, token).
		Order("version DESC").
		First(&root).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest root: %w", err)
	}
	return &root, nil
}

// GetRootByVersion returns a specific root version
func (s *pgStore) GetRootByVersion(ctx context.Context, chain domain.Chain, token string, version uint64) (*schema.MerkleRoot, error) {
	var root schema.MerkleRoot
	err := s.db.WithContext(ctx).
		Where("chain = ? AND token = ? AND version = ?", chain, token, version).
		First(&root).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get root by version: %w", err)
	}
	return &root, nil
}

// AppendRoot stores the root as the next version for its chain and token
func (s *pgStore) AppendRoot(ctx context.Context, input AppendRootInput) (*schema.MerkleRoot, error) {
	leaves, err := json.Marshal(input.Leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal root leaves: %w", err)
	}

	var root schema.MerkleRoot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest []schema.MerkleRoot
		if err := tx.Where("chain = ? AND token = ?", input.Chain, input.Token).
			Order("version DESC").
			Limit(1).
			Find(&latest).Error; err != nil {
			return fmt.Errorf("failed to get latest root version: %w", err)
		}

		version := uint64(1)
		if len(latest) > 0 {
			version = latest[0].Version + 1
		}

		root = schema.MerkleRoot{
			Chain:     input.Chain,
			Token:     input.Token,
			Version:   version,
			Root:      input.Root,
			LeafCount: input.LeafCount,
			Leaves:    leaves,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain"}, {Name: "token"}, {Name: "version"}},
			DoNothing: true,
		}).Create(&root)
		if result.Error != nil {
			return fmt.Errorf("failed to append root: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &root, nil
}

// GetClaim returns the claim of a user at a root version
func (s *pgStore) GetClaim(ctx context.Context, userID string, chain domain.Chain, token string, version uint64) (*schema.Claim, error) {
	var claim schema.Claim
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND chain = ? AND token = ? AND merkle_version = ?", userID, chain, token, version).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return &claim, nil
}

// SumClaimedByBeneficiary sums claims per user for a chain and token
func (s *pgStore) SumClaimedByBeneficiary(ctx context.Context, chain domain.Chain, token string) (map[string]decimal.Decimal, error) {
	var rows []struct {
		UserID string
		Amount decimal.Decimal
	}

	err := s.db.WithContext(ctx).
		Model(&schema.Claim{}).
		Select("user_id, SUM(amount) AS amount").
		Where("chain = ? AND token = ?", chain, token).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum claims: %w", err)
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		sums[r.UserID] = r.Amount
	}
	return sums, nil
}

// CreateClaim records a claim at the latest root version.
// Claims of one user on one chain and token are serialized by a transaction-scoped advisory lock,
// so the version and balance checks below hold until the insert commits.
func (s *pgStore) CreateClaim(ctx context.Context, input CreateClaimInput) (*schema.Claim, error) {
	claim := schema.Claim{
		UserID:        input.UserID,
		Chain:         input.Chain,
		Token:         input.Token,
		MerkleVersion: input.MerkleVersion,
		Amount:        input.Amount,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lockKey := fmt.Sprintf("claim:%s:%s:%s", input.UserID, input.Chain, input.Token)
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
			return fmt.Errorf("failed to lock claims: %w", err)
		}

		// 1. One claim per version
		var existing int64
		if err := tx.Model(&schema.Claim{}).
			Where("user_id = ? AND chain = ? AND token = ? AND merkle_version = ?",
				input.UserID, input.Chain, input.Token, input.MerkleVersion).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check claim: %w", err)
		}
		if existing > 0 {
			return domain.ErrAlreadyClaimed
		}

		// 2. Only the latest root can be claimed against
		var latestVersion uint64
		if err := tx.Model(&schema.MerkleRoot{}).
			Select("COALESCE(MAX(version), 0)").
			Where("chain = ? AND token = ?", input.Chain, input.Token).
			Row().Scan(&latestVersion); err != nil {
			return fmt.Errorf("failed to get latest root version: %w", err)
		}
		if latestVersion != input.MerkleVersion {
			return fmt.Errorf("%w: claim at version %d, latest is %d",
				domain.ErrStaleRootVersion, input.MerkleVersion, latestVersion)
		}

		// 3. Claimed total stays within the claimable ledger total
		var earned, claimed decimal.Decimal
		if err := tx.Table("commission_ledger_entries AS e").
			Select("COALESCE(SUM(e.amount), 0)").
			Joins("JOIN trades t ON t.id = e.source_trade_id").
			Where("e.beneficiary_id = ? AND e.destination = ? AND e.token = ? AND t.chain = ?",
				input.UserID, domain.DestinationClaimable, input.Token, input.Chain).
			Row().Scan(&earned); err != nil {
			return fmt.Errorf("failed to sum claimable entries: %w", err)
		}
		if err := tx.Model(&schema.Claim{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND chain = ? AND token = ?", input.UserID, input.Chain, input.Token).
			Row().Scan(&claimed); err != nil {
			return fmt.Errorf("failed to sum claims: %w", err)
		}
		if claimed.Add(input.Amount).GreaterThan(earned) {
			return fmt.Errorf("%w: claiming %s with %s unclaimed", domain.ErrClaimExceedsBalance,
				input.Amount.StringFixed(domain.AMOUNT_DECIMALS), earned.Sub(claimed).StringFixed(domain.AMOUNT_DECIMALS))
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "chain"}, {Name: "token"}, {Name: "merkle_version"}},
			DoNothing: true,
		}).Create(&claim)
		if result.Error != nil {
			return fmt.Errorf("failed to create claim: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAlreadyClaimed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &claim, nil
}

// GetLatestClaimID returns the highest claim id for a chain and token
func (s *pgStore) GetLatestClaimID(ctx context.Context, chain domain.Chain, token string) (uint64, error) {
	var id uint64
	err := s.db.WithContext(ctx).
		Model(&schema.Claim{}).
		Select("COALESCE(MAX(id), 0)").
		Where("chain = ? AND token = ?", chain, token).
		Row().Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest claim: %w", err)
	}
	return id, nil
}

// SetClaimTxHash records the payout transaction of a claim
func (s *pgStore) SetClaimTxHash(ctx context.Context, claimID uint64, txHash string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Claim{}).
		Where("id = ?", claimID).
		Update("tx_hash", txHash).Error
	if err != nil {
		return fmt.Errorf("failed to set claim tx hash: %w", err)
	}
	return nil
}

// GetCursor returns the cursor value for a key
func (s *pgStore) GetCursor(ctx context.Context, key string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	value, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse cursor: %w", err)
	}
	return value, nil
}

// SetCursor stores the cursor value for a key
func (s *pgStore) SetCursor(ctx context.Context, key string, value uint64) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: strconv.FormatUint(value, 10),
	}
	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set cursor: %w", err)
	}
	return nil
}
