package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger_meta (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    anchor_date     TEXT NOT NULL,
    past_days       INTEGER NOT NULL,
    future_days     INTEGER NOT NULL,
    seed            INTEGER NOT NULL,
    generated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id              TEXT PRIMARY KEY,
    description     TEXT NOT NULL,
    tx_date         TEXT NOT NULL,
    amount          TEXT NOT NULL,
    tx_type         TEXT NOT NULL,
    cost_center_id  TEXT NOT NULL,
    project_id      TEXT,
    status          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(tx_date);
CREATE INDEX IF NOT EXISTS idx_transactions_center ON transactions(cost_center_id);
`
