// tgfileid - Telegram file ID codec and index.
// Copyright (C) 2024 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store is an SQLite index from file unique IDs to the latest file ID
// seen for them.
package store

import (
	"context"

	"github.com/go-faster/errors"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"go.mau.fi/util/dbutil"

	"go.mau.fi/tgfileid/pkg/store/upgrades"
)

type Container struct {
	db *dbutil.Database

	FileID *FileIDQuery
}

func NewStore(db *dbutil.Database, log dbutil.DatabaseLogger) *Container {
	child := db.Child("tgfileid_version", upgrades.Table, log)
	return &Container{
		db:     child,
		FileID: &FileIDQuery{dbutil.MakeQueryHelper(child, newEntry)},
	}
}

// Open opens or creates the SQLite database at path and upgrades its schema.
func Open(ctx context.Context, path string, log zerolog.Logger) (*Container, error) {
	db, err := dbutil.NewWithDialect("file:"+path+"?_txlock=immediate", "sqlite3")
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	// SQLite only allows one writer anyway.
	db.RawDB.SetMaxOpenConns(1)
	c := NewStore(db, dbutil.ZeroLogger(log.With().Str("db_section", "tgfileid").Logger()))
	if err = c.Upgrade(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "upgrade database")
	}
	return c, nil
}

func (c *Container) Upgrade(ctx context.Context) error {
	return c.db.Upgrade(ctx)
}

func (c *Container) Close() error {
	return c.db.Close()
}
