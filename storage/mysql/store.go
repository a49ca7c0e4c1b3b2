package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"nft-ticketing-backend/event"
	"nft-ticketing-backend/redemption"
)

const (
	ticketTable     = "ticket_validations"
	eventTable      = "events"
	ticketTypeTable = "ticket_types"
)

var (
	ticketCols     = []string{"contract_address", "token_id", "event_id", "tier_id", "is_used", "created_at"}
	eventCols      = []string{"event_id", "title", "description", "location", "starts_at", "ends_at", "image_uri", "organizer_address", "ticket_contract", "launchpad_contract", "market_contract", "platform_fee_percent", "royalty_fee_percent", "max_tickets_per_wallet", "currencies", "created_at"}
	ticketTypeCols = []string{"ticket_type_id", "event_id", "sort_order", "name", "description", "price", "currency", "total_supply", "sold", "image_uri"}
)

// Store is the database/sql record store. It is written against the MySQL
// driver and keeps to SQL that SQLite also accepts.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Store) Create(ctx context.Context, r redemption.Record) error {
	values := []interface{}{r.ContractAddress, r.TokenID, r.EventID, r.TierID, false, r.CreatedAt.UnixMicro()}
	err := insert(ctx, s.db, ticketTable, ticketCols, values)
	if err == nil {
		return nil
	}
	if isDuplicateEntry(err) {
		return redemption.ErrDuplicateTicket
	}
	// Other drivers report key conflicts differently; an existing row is enough.
	if _, getErr := s.Get(ctx, r.Key); getErr == nil {
		return redemption.ErrDuplicateTicket
	}
	return fmt.Errorf("create: %w", err)
}

func (s *Store) Get(ctx context.Context, key redemption.Key) (redemption.Record, error) {
	const q = `SELECT contract_address, token_id, event_id, tier_id, is_used, used_at, validated_by, created_at
		FROM ticket_validations WHERE contract_address = ? AND token_id = ?`

	var (
		r           redemption.Record
		usedAt      sql.NullInt64
		validatedBy sql.NullString
		createdAt   int64
	)
	err := s.db.QueryRowContext(ctx, q, key.ContractAddress, key.TokenID).
		Scan(&r.ContractAddress, &r.TokenID, &r.EventID, &r.TierID, &r.IsUsed, &usedAt, &validatedBy, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return redemption.Record{}, redemption.ErrNotFound
		}
		return redemption.Record{}, fmt.Errorf("get: error scanning ticket: %w", err)
	}

	r.CreatedAt = time.UnixMicro(createdAt).UTC()
	if usedAt.Valid {
		t := time.UnixMicro(usedAt.Int64).UTC()
		r.UsedAt = &t
	}
	r.ValidatedBy = validatedBy.String
	return r, nil
}

// MarkUsed relies on the is_used guard in the WHERE clause: the statement
// itself is the compare-and-set, so no transaction is needed.
func (s *Store) MarkUsed(ctx context.Context, key redemption.Key, usedAt time.Time, validatedBy string) (redemption.Record, error) {
	updated, err := update(ctx, s.db, ticketTable,
		[]string{"is_used", "used_at", "validated_by"},
		[]interface{}{true, usedAt.UnixMicro(), validatedBy},
		[]string{"contract_address", "token_id", "is_used"},
		[]interface{}{key.ContractAddress, key.TokenID, false},
	)
	if err != nil {
		return redemption.Record{}, fmt.Errorf("markUsed: %w", err)
	}

	r, err := s.Get(ctx, key)
	if err != nil {
		return redemption.Record{}, err
	}
	if updated == 0 {
		return redemption.Record{}, &redemption.AlreadyRedeemedError{Record: r}
	}
	return r, nil
}

func (s *Store) CreateEvent(ctx context.Context, e event.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("createEvent: error beginning db transaction: %w", err)
	}

	values := []interface{}{
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		e.StartsAt.Format(time.RFC3339Nano),
		e.EndsAt.Format(time.RFC3339Nano),
		e.ImageURI,
		e.OrganizerAddress,
		e.TicketContract,
		e.LaunchpadContract,
		e.MarketContract,
		e.PlatformFeePercent,
		e.RoyaltyFeePercent,
		e.MaxTicketsPerWallet,
		strings.Join(e.Currencies, ","),
		e.CreatedAt.UnixMicro(),
	}
	if err := insert(ctx, tx, eventTable, eventCols, values); err != nil {
		tx.Rollback()
		return fmt.Errorf("createEvent: %w", err)
	}

	for i, tt := range e.TicketTypes {
		values := []interface{}{tt.ID, e.ID, i, tt.Name, tt.Description, tt.Price, tt.Currency, tt.TotalSupply, tt.Sold, tt.ImageURI}
		if err := insert(ctx, tx, ticketTypeTable, ticketTypeCols, values); err != nil {
			tx.Rollback()
			return fmt.Errorf("createEvent: ticket type %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("createEvent: could not commit event %s: %w", e.ID, err)
	}
	return nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (event.Event, error) {
	q := fmt.Sprintf(`SELECT %s FROM events WHERE event_id = ?`, strings.Join(eventCols, ", "))

	var (
		e                  event.Event
		startsAt, endsAt   string
		currencies         sql.NullString
		description        sql.NullString
		location, imageURI sql.NullString
		ticket, launchpad  sql.NullString
		market             sql.NullString
		createdAt          int64
	)
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.Title, &description, &location, &startsAt, &endsAt, &imageURI, &e.OrganizerAddress,
		&ticket, &launchpad, &market, &e.PlatformFeePercent, &e.RoyaltyFeePercent, &e.MaxTicketsPerWallet,
		&currencies, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return event.Event{}, event.ErrNotFound
		}
		return event.Event{}, fmt.Errorf("getEvent: error scanning event: %w", err)
	}

	if e.StartsAt, err = time.Parse(time.RFC3339Nano, startsAt); err != nil {
		return event.Event{}, fmt.Errorf("getEvent: bad starts_at %q: %w", startsAt, err)
	}
	if e.EndsAt, err = time.Parse(time.RFC3339Nano, endsAt); err != nil {
		return event.Event{}, fmt.Errorf("getEvent: bad ends_at %q: %w", endsAt, err)
	}
	e.Description = description.String
	e.Location = location.String
	e.ImageURI = imageURI.String
	e.TicketContract = ticket.String
	e.LaunchpadContract = launchpad.String
	e.MarketContract = market.String
	e.CreatedAt = time.UnixMicro(createdAt).UTC()
	if currencies.String != "" {
		e.Currencies = strings.Split(currencies.String, ",")
	}

	e.TicketTypes, err = s.ticketTypes(ctx, id)
	if err != nil {
		return event.Event{}, fmt.Errorf("getEvent: %w", err)
	}
	return e, nil
}

func (s *Store) ticketTypes(ctx context.Context, eventID string) ([]event.TicketType, error) {
	const q = `SELECT ticket_type_id, event_id, name, description, price, currency, total_supply, sold, image_uri
		FROM ticket_types WHERE event_id = ? ORDER BY sort_order`

	rows, err := s.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("ticketTypes: error querying: %w", err)
	}
	defer rows.Close()

	var tts []event.TicketType
	for rows.Next() {
		var (
			tt                              event.TicketType
			description, currency, imageURI sql.NullString
		)
		if err := rows.Scan(&tt.ID, &tt.EventID, &tt.Name, &description, &tt.Price, &currency, &tt.TotalSupply, &tt.Sold, &imageURI); err != nil {
			return nil, fmt.Errorf("ticketTypes: error scanning: %w", err)
		}
		tt.Description = description.String
		tt.Currency = currency.String
		tt.ImageURI = imageURI.String
		tts = append(tts, tt)
	}
	return tts, rows.Err()
}
