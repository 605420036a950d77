package sqlite

// Schema DDL. The slots table is the storage port surface: one row per
// derived key, value stored verbatim. store_meta holds the store identity.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS slots (
    key BLOB PRIMARY KEY,
    value BLOB NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS store_meta (
    meta_key TEXT PRIMARY KEY,
    meta_value TEXT NOT NULL
);
`
