package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS checks (
    check_id        INTEGER PRIMARY KEY AUTOINCREMENT,
    checked_at      INTEGER NOT NULL,
    label           TEXT,
    raw_line        TEXT,
    raw_version     TEXT,
    major           INTEGER,
    min_major       INTEGER NOT NULL,
    semver          TEXT,
    passed          INTEGER NOT NULL DEFAULT 0,
    failure_kind    TEXT,
    tool_version    TEXT
);

CREATE INDEX IF NOT EXISTS idx_checks_checked_at
    ON checks(checked_at DESC);
CREATE INDEX IF NOT EXISTS idx_checks_passed
    ON checks(passed, checked_at DESC);
`
