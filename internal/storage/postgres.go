package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation       = "23505"
	pgInsufficientPrivilege = "42501"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		username TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'L4_ADMIN',
		full_name TEXT,
		phone TEXT,
		avatar_url TEXT,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		amount BIGINT NOT NULL CHECK (amount >= 0),
		date TIMESTAMPTZ NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		type TEXT NOT NULL,
		created_by TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS jersey_orders (
		id TEXT PRIMARY KEY,
		size TEXT NOT NULL,
		name_on_jersey TEXT NOT NULL,
		number TEXT NOT NULL DEFAULT '',
		delivery_location TEXT NOT NULL,
		contact_info TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		receipt_number TEXT,
		ordered_by TEXT NOT NULL,
		order_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		amount_charged BIGINT,
		balance_due BIGINT
	);
	CREATE INDEX IF NOT EXISTS jersey_orders_ordered_by ON jersey_orders (ordered_by);
	CREATE TABLE IF NOT EXISTS receipts (
		id TEXT PRIMARY KEY,
		number TEXT UNIQUE NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		amount BIGINT NOT NULL,
		description TEXT NOT NULL,
		payer_name TEXT NOT NULL,
		payer_email TEXT NOT NULL,
		payer_phone TEXT NOT NULL,
		payer_role TEXT NOT NULL,
		receiver_name TEXT NOT NULL,
		receiver_email TEXT NOT NULL,
		receiver_phone TEXT NOT NULL,
		receiver_role TEXT NOT NULL,
		mode_of_payment TEXT NOT NULL,
		type TEXT NOT NULL,
		generated_by TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS receipts_payer_email ON receipts (lower(payer_email));
	CREATE TABLE IF NOT EXISTS notification_failures (
		id TEXT PRIMARY KEY,
		receipt_id TEXT NOT NULL,
		receipt_number TEXT NOT NULL,
		recipient TEXT NOT NULL,
		reason TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		author TEXT NOT NULL,
		is_important BOOLEAN NOT NULL DEFAULT FALSE,
		media_url TEXT NOT NULL DEFAULT '',
		duration TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS season_stats (
		id INT PRIMARY KEY CHECK (id = 1),
		season_name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		played INT NOT NULL,
		total INT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS social_stats (
		platform TEXT PRIMARY KEY,
		followers BIGINT NOT NULL,
		engagement_rate DOUBLE PRECISION NOT NULL,
		last_updated TIMESTAMPTZ NOT NULL
	);`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgresStorage(ctx context.Context, databaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) Close() {
	store.db.Close()
}

// pgError maps server errors the services care about onto errs sentinels.
func pgError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInsufficientPrivilege {
		return fmt.Errorf("%s: %w", op, errs.ErrPermissionDenied)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (s *PostgresStorage) CreateIdentity(ctx context.Context, identity model.Identity, passwordHash string) (model.Identity, error) {
	const query = `
		INSERT INTO users (id, email, username, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	identity.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, query, identity.ID, identity.Email, identity.DisplayName, identity.Role, passwordHash, identity.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Identity{}, errs.ErrEmailAlreadyExists
		}
		return model.Identity{}, pgError(err, "create identity")
	}

	return identity, nil
}

const identityColumns = `id, email, username, role, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(avatar_url, ''), created_at`

func scanIdentity(row pgx.Row, extra ...any) (model.Identity, error) {
	var u model.Identity
	dest := append([]any{&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.FullName, &u.Phone, &u.AvatarURL, &u.CreatedAt}, extra...)
	err := row.Scan(dest...)
	return u, err
}

func (s *PostgresStorage) GetIdentityByEmail(ctx context.Context, email string) (model.Identity, string, error) {
	query := `SELECT ` + identityColumns + `, password_hash FROM users WHERE email = $1`

	var hash string
	user, err := scanIdentity(s.db.QueryRow(ctx, query, email), &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, "", errs.ErrUserNotFound
		}
		return model.Identity{}, "", pgError(err, "get identity by email")
	}

	return user, hash, nil
}

func (s *PostgresStorage) GetIdentityByID(ctx context.Context, id string) (model.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM users WHERE id = $1`

	user, err := scanIdentity(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, errs.ErrUserNotFound
		}
		return model.Identity{}, pgError(err, "get identity by id")
	}

	return user, nil
}

func (s *PostgresStorage) ListIdentities(ctx context.Context) ([]model.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, pgError(err, "list identities")
	}
	defer rows.Close()

	list := []model.Identity{}
	for rows.Next() {
		u, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan identity: %w", err)
		}
		list = append(list, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

func (s *PostgresStorage) UpdateIdentity(ctx context.Context, id string, update model.ProfileUpdate) error {
	const query = `
		UPDATE users SET
			username = COALESCE($2, username),
			full_name = COALESCE($3, full_name),
			phone = COALESCE($4, phone),
			avatar_url = COALESCE($5, avatar_url)
		WHERE id = $1`

	tag, err := s.db.Exec(ctx, query, id, update.DisplayName, update.FullName, update.Phone, update.AvatarURL)
	if err != nil {
		return pgError(err, "update identity")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) UpdateRole(ctx context.Context, id string, role model.Role) error {
	tag, err := s.db.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1`, id, role)
	if err != nil {
		return pgError(err, "update role")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	tag, err := s.db.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return pgError(err, "update password")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	const query = `
		INSERT INTO transactions (id, amount, date, category, description, type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	t.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, query, t.ID, t.Amount, t.Date, t.Category, t.Description, t.Type, t.CreatedBy)
	if err != nil {
		return model.Transaction{}, pgError(err, "insert transaction")
	}
	return t, nil
}

func (s *PostgresStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	const query = `
		SELECT id, amount, date, category, description, type, created_by
		FROM transactions
		ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, pgError(err, "list transactions")
	}
	defer rows.Close()

	list := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Date, &t.Category, &t.Description, &t.Type, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

const orderColumns = `id, size, name_on_jersey, number, delivery_location, contact_info, status,
	COALESCE(receipt_number, ''), ordered_by, order_date, amount_charged, balance_due`

func scanOrder(row pgx.Row) (model.JerseyOrder, error) {
	var o model.JerseyOrder
	err := row.Scan(&o.ID, &o.Size, &o.NameOnJersey, &o.Number, &o.DeliveryLocation, &o.ContactInfo, &o.Status,
		&o.ReceiptNumber, &o.OrderedBy, &o.OrderDate, &o.AmountCharged, &o.BalanceDue)
	return o, err
}

func (s *PostgresStorage) AddJerseyOrder(ctx context.Context, order model.JerseyOrder) (model.JerseyOrder, error) {
	const query = `
		INSERT INTO jersey_orders (id, size, name_on_jersey, number, delivery_location, contact_info, status, ordered_by, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	order.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, query, order.ID, order.Size, order.NameOnJersey, order.Number, order.DeliveryLocation,
		order.ContactInfo, order.Status, order.OrderedBy, order.OrderDate)
	if err != nil {
		return model.JerseyOrder{}, pgError(err, "insert jersey order")
	}
	return order, nil
}

func (s *PostgresStorage) GetJerseyOrder(ctx context.Context, id string) (model.JerseyOrder, error) {
	o, err := scanOrder(s.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM jersey_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.JerseyOrder{}, errs.ErrNotFound
		}
		return model.JerseyOrder{}, pgError(err, "get jersey order")
	}
	return o, nil
}

func (s *PostgresStorage) ListJerseyOrders(ctx context.Context, orderedBy string) ([]model.JerseyOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM jersey_orders WHERE ($1::text = '' OR ordered_by = $1) ORDER BY order_date DESC`

	rows, err := s.db.Query(ctx, query, orderedBy)
	if err != nil {
		return nil, pgError(err, "list jersey orders")
	}
	defer rows.Close()

	list := []model.JerseyOrder{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan jersey order: %w", err)
		}
		list = append(list, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

// ConfirmJerseyOrder bills the order and inserts its receipt in one transaction.
// The status check is part of the UPDATE, so a concurrent confirmation loses.
func (s *PostgresStorage) ConfirmJerseyOrder(ctx context.Context, id string, charged, balance int64, r model.Receipt) (model.JerseyOrder, model.Receipt, error) {
	const confirmQuery = `
		UPDATE jersey_orders
		SET status = 'CONFIRMED', amount_charged = $2, balance_due = $3, receipt_number = $4
		WHERE id = $1 AND status = 'PENDING'
		RETURNING ` + orderColumns

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return model.JerseyOrder{}, model.Receipt{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	order, err := scanOrder(tx.QueryRow(ctx, confirmQuery, id, charged, balance, r.Number))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return model.JerseyOrder{}, model.Receipt{}, pgError(err, "confirm jersey order")
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jersey_orders WHERE id = $1)`, id).Scan(&exists); err != nil {
			return model.JerseyOrder{}, model.Receipt{}, pgError(err, "check jersey order")
		}
		if !exists {
			return model.JerseyOrder{}, model.Receipt{}, errs.ErrNotFound
		}
		return model.JerseyOrder{}, model.Receipt{}, fmt.Errorf("%w: order %s is not pending", errs.ErrInvalidState, id)
	}

	r, err = insertReceipt(ctx, tx, r)
	if err != nil {
		return model.JerseyOrder{}, model.Receipt{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.JerseyOrder{}, model.Receipt{}, fmt.Errorf("commit: %w", err)
	}

	return order, r, nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertReceipt(ctx context.Context, db execer, r model.Receipt) (model.Receipt, error) {
	const query = `
		INSERT INTO receipts (id, number, date, amount, description,
			payer_name, payer_email, payer_phone, payer_role,
			receiver_name, receiver_email, receiver_phone, receiver_role,
			mode_of_payment, type, generated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	r.ID = uuid.NewString()
	_, err := db.Exec(ctx, query, r.ID, r.Number, r.Date, r.Amount, r.Description,
		r.Payer.Name, r.Payer.Email, r.Payer.Phone, r.Payer.Role,
		r.Receiver.Name, r.Receiver.Email, r.Receiver.Phone, r.Receiver.Role,
		r.ModeOfPayment, r.Type, r.GeneratedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Receipt{}, fmt.Errorf("%w: %s", errs.ErrDuplicateReceipt, r.Number)
		}
		return model.Receipt{}, pgError(err, "insert receipt")
	}
	return r, nil
}

func (s *PostgresStorage) AddReceipt(ctx context.Context, r model.Receipt) (model.Receipt, error) {
	return insertReceipt(ctx, s.db, r)
}

const receiptColumns = `id, number, date, amount, description,
	payer_name, payer_email, payer_phone, payer_role,
	receiver_name, receiver_email, receiver_phone, receiver_role,
	mode_of_payment, type, generated_by`

func scanReceipt(row pgx.Row) (model.Receipt, error) {
	var r model.Receipt
	err := row.Scan(&r.ID, &r.Number, &r.Date, &r.Amount, &r.Description,
		&r.Payer.Name, &r.Payer.Email, &r.Payer.Phone, &r.Payer.Role,
		&r.Receiver.Name, &r.Receiver.Email, &r.Receiver.Phone, &r.Receiver.Role,
		&r.ModeOfPayment, &r.Type, &r.GeneratedBy)
	return r, err
}

func (s *PostgresStorage) GetReceipt(ctx context.Context, id string) (model.Receipt, error) {
	r, err := scanReceipt(s.db.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Receipt{}, errs.ErrNotFound
		}
		return model.Receipt{}, pgError(err, "get receipt")
	}
	return r, nil
}

func (s *PostgresStorage) ListReceipts(ctx context.Context, payerEmail string) ([]model.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE ($1::text = '' OR lower(payer_email) = lower($1)) ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query, payerEmail)
	if err != nil {
		return nil, pgError(err, "list receipts")
	}
	defer rows.Close()

	list := []model.Receipt{}
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

func (s *PostgresStorage) RecordNotificationFailure(ctx context.Context, f model.NotificationFailure) error {
	const query = `
		INSERT INTO notification_failures (id, receipt_id, receipt_number, recipient, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.Exec(ctx, query, uuid.NewString(), f.ReceiptID, f.ReceiptNumber, f.Recipient, f.Reason, f.OccurredAt)
	if err != nil {
		return pgError(err, "insert notification failure")
	}
	return nil
}

func (s *PostgresStorage) ListNotificationFailures(ctx context.Context) ([]model.NotificationFailure, error) {
	const query = `
		SELECT id, receipt_id, receipt_number, recipient, reason, occurred_at
		FROM notification_failures
		ORDER BY occurred_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, pgError(err, "list notification failures")
	}
	defer rows.Close()

	list := []model.NotificationFailure{}
	for rows.Next() {
		var f model.NotificationFailure
		if err := rows.Scan(&f.ID, &f.ReceiptID, &f.ReceiptNumber, &f.Recipient, &f.Reason, &f.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan notification failure: %w", err)
		}
		list = append(list, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

func (s *PostgresStorage) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	const query = `
		SELECT id, title, content, date, author, is_important, media_url, duration
		FROM announcements
		ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, pgError(err, "list announcements")
	}
	defer rows.Close()

	list := []model.Announcement{}
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.Author, &a.IsImportant, &a.MediaURL, &a.Duration); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

func (s *PostgresStorage) AddAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	const query = `
		INSERT INTO announcements (id, title, content, date, author, is_important, media_url, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	a.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, query, a.ID, a.Title, a.Content, a.Date, a.Author, a.IsImportant, a.MediaURL, a.Duration)
	if err != nil {
		return model.Announcement{}, pgError(err, "insert announcement")
	}
	return a, nil
}

func (s *PostgresStorage) DeleteAnnouncement(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return pgError(err, "delete announcement")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) GetSeasonStats(ctx context.Context) (model.SeasonStats, bool, error) {
	const query = `SELECT season_name, start_date, played, total FROM season_stats WHERE id = 1`

	var st model.SeasonStats
	err := s.db.QueryRow(ctx, query).Scan(&st.SeasonName, &st.StartDate, &st.Played, &st.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SeasonStats{}, false, nil
		}
		return model.SeasonStats{}, false, pgError(err, "get season stats")
	}
	return st, true, nil
}

func (s *PostgresStorage) PutSeasonStats(ctx context.Context, st model.SeasonStats) error {
	const query = `
		INSERT INTO season_stats (id, season_name, start_date, played, total)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET season_name = EXCLUDED.season_name, start_date = EXCLUDED.start_date,
			played = EXCLUDED.played, total = EXCLUDED.total`

	if _, err := s.db.Exec(ctx, query, st.SeasonName, st.StartDate, st.Played, st.Total); err != nil {
		return pgError(err, "put season stats")
	}
	return nil
}

func (s *PostgresStorage) ListSocialStats(ctx context.Context) ([]model.SocialStats, error) {
	rows, err := s.db.Query(ctx, `SELECT platform, followers, engagement_rate, last_updated FROM social_stats`)
	if err != nil {
		return nil, pgError(err, "list social stats")
	}
	defer rows.Close()

	list := []model.SocialStats{}
	for rows.Next() {
		var st model.SocialStats
		if err := rows.Scan(&st.Platform, &st.Followers, &st.EngagementRate, &st.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan social stats: %w", err)
		}
		list = append(list, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

func (s *PostgresStorage) UpsertSocialStats(ctx context.Context, st model.SocialStats) error {
	const query = `
		INSERT INTO social_stats (platform, followers, engagement_rate, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (platform) DO UPDATE
		SET followers = EXCLUDED.followers, engagement_rate = EXCLUDED.engagement_rate,
			last_updated = EXCLUDED.last_updated`

	if _, err := s.db.Exec(ctx, query, st.Platform, st.Followers, st.EngagementRate, st.LastUpdated); err != nil {
		return pgError(err, "upsert social stats")
	}
	return nil
}
