// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore persists JSON blobs under string keys.

# Contract

The store plays the role a browser's localStorage plays for the original
app: opaque JSON values written wholesale, read back tolerantly.

	store, err := kvstore.Open(cfg)
	ok, err := store.Get("bets", &bets) // false when absent or corrupt
	err = store.Set("bets", bets)       // full overwrite
	err = store.Remove("user")

Get never surfaces a decode failure: a value that no longer parses is
logged and treated as absent, so stale or mangled data degrades to empty
state instead of wedging the app.

# Backends

The driver is selected by Config.DatabaseType:

  - sqlite (default): a local file via modernc.org/sqlite, pure Go
  - postgres: via lib/pq, for running against a shared server

Both see the same SQL; the schema and queries stick to the portable
subset ($1 placeholders, ON CONFLICT upsert, no column defaults).

# Keys

The app uses exactly two keys, "user" (the persisted session) and "bets"
(the full bet list). There is no incremental patching and no migration
versioning; every mutation rewrites the whole blob.
*/
package kvstore
