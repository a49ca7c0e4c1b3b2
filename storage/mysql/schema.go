package mysql

// Statements are kept to the subset MySQL and SQLite share so the store can be
// exercised against an in-process database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ticket_validations (
		contract_address VARCHAR(64) NOT NULL,
		token_id VARCHAR(78) NOT NULL,
		event_id VARCHAR(64) NOT NULL,
		tier_id VARCHAR(64) NOT NULL,
		is_used BOOLEAN NOT NULL DEFAULT FALSE,
		used_at BIGINT NULL,
		validated_by VARCHAR(128) NULL,
		created_at BIGINT NOT NULL,
		PRIMARY KEY (contract_address, token_id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id VARCHAR(64) NOT NULL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		location VARCHAR(255),
		starts_at VARCHAR(40) NOT NULL,
		ends_at VARCHAR(40) NOT NULL,
		image_uri VARCHAR(1024),
		organizer_address VARCHAR(64) NOT NULL,
		ticket_contract VARCHAR(64),
		launchpad_contract VARCHAR(64),
		market_contract VARCHAR(64),
		platform_fee_percent BIGINT NOT NULL,
		royalty_fee_percent BIGINT NOT NULL,
		max_tickets_per_wallet BIGINT NOT NULL,
		currencies VARCHAR(255),
		created_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ticket_types (
		ticket_type_id VARCHAR(64) NOT NULL PRIMARY KEY,
		event_id VARCHAR(64) NOT NULL,
		sort_order INT NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price VARCHAR(78) NOT NULL,
		currency VARCHAR(16),
		total_supply BIGINT NOT NULL,
		sold BIGINT NOT NULL,
		image_uri VARCHAR(1024)
	)`,
}
