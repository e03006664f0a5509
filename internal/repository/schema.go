package repository

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	page_count INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS segments (
	run_id              TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	segment_id          INTEGER NOT NULL,
	start_page          INTEGER NOT NULL,
	end_page            INTEGER NOT NULL,
	main_type           TEXT NOT NULL,
	sub_type            TEXT NOT NULL,
	confidence          REAL NOT NULL,
	requires_extraction INTEGER NOT NULL,
	priority            INTEGER NOT NULL,
	PRIMARY KEY (run_id, segment_id)
);

CREATE TABLE IF NOT EXISTS classifications (
	run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	segment_id    INTEGER NOT NULL,
	document_type TEXT NOT NULL,
	confidence    REAL NOT NULL,
	reasoning     TEXT NOT NULL,
	scores_json   TEXT NOT NULL,
	PRIMARY KEY (run_id, segment_id)
);

CREATE INDEX IF NOT EXISTS idx_segments_run ON segments(run_id);
`
