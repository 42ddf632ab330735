package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS drafts (
    key          TEXT PRIMARY KEY,
    payload      TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);
`

// draftKey is the single well-known key the current draft lives under.
const draftKey = "budget_draft"
