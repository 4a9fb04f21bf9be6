package store

// Amounts are stored as decimal TEXT so no precision is lost.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	account_type TEXT NOT NULL,
	account_name TEXT NOT NULL,
	balance TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS income (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	source TEXT NOT NULL,
	amount TEXT NOT NULL,
	frequency TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL,
	amount TEXT NOT NULL,
	frequency TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	full_name TEXT NOT NULL,
	age INTEGER NOT NULL,
	monthly_income TEXT NOT NULL,
	risk_tolerance TEXT NOT NULL,
	investment_horizon TEXT NOT NULL,
	life_goals TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS recommendations (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	risk_profile TEXT NOT NULL,
	recommendation_text TEXT NOT NULL,
	allocation_suggestion TEXT NOT NULL,
	payload TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_income_user ON income(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_expenses_user ON expenses(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_recommendations_user ON recommendations(user_id, created_at);

CREATE TRIGGER IF NOT EXISTS recommendations_no_update
BEFORE UPDATE ON recommendations
BEGIN
	SELECT RAISE(ABORT, 'recommendation history is append-only');
END;

CREATE TRIGGER IF NOT EXISTS recommendations_no_delete
BEFORE DELETE ON recommendations
BEGIN
	SELECT RAISE(ABORT, 'recommendation history is append-only');
END;
`
