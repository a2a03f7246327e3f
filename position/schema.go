package position

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	id TEXT PRIMARY KEY,
	market_index INTEGER NOT NULL,
	size_scaled INTEGER NOT NULL,
	strike_price REAL NOT NULL,
	open_order_id TEXT NOT NULL,
	close_order_id TEXT NOT NULL,
	status TEXT NOT NULL,
	sub_account_id INTEGER NOT NULL,
	opened_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_positions_status ON positions(status);
`
