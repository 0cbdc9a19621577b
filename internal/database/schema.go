package database

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT NOT NULL UNIQUE,
	username TEXT UNIQUE,
	password_hash TEXT,
	avatar TEXT,
	native_language TEXT,
	target_language TEXT,
	level TEXT,
	provider TEXT,
	oauth_subject TEXT,
	badges TEXT[] NOT NULL DEFAULT '{}',
	join_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at TIMESTAMPTZ,
	UNIQUE (provider, oauth_subject)
);

CREATE TABLE IF NOT EXISTS sessions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(id),
	token TEXT NOT NULL UNIQUE,
	ip_address TEXT,
	user_agent TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS progression_records (
	email TEXT PRIMARY KEY,
	total_xp INTEGER NOT NULL DEFAULT 0 CHECK (total_xp >= 0),
	weekly_xp INTEGER NOT NULL DEFAULT 0 CHECK (weekly_xp >= 0),
	streak_days INTEGER NOT NULL DEFAULT 1 CHECK (streak_days >= 1),
	last_active TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quiz_attempts (
	email TEXT NOT NULL,
	lesson_id INTEGER NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	score INTEGER NOT NULL DEFAULT 0,
	attempts INTEGER NOT NULL DEFAULT 0,
	last_attempt TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (email, lesson_id)
);

CREATE TABLE IF NOT EXISTS xp_transactions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT NOT NULL,
	amount INTEGER NOT NULL,
	source TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS progression_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
