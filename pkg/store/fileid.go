package store

import (
	"context"
	"database/sql"
	"time"

	"go.mau.fi/util/dbutil"

	"go.mau.fi/tgfileid/pkg/fileid"
)

const (
	upsertFileIDQuery = `
		INSERT INTO file_id (unique_id, file_id, type, version, sub_version, dc_id, owner_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (unique_id) DO UPDATE SET
			file_id=excluded.file_id,
			type=excluded.type,
			version=excluded.version,
			sub_version=excluded.sub_version,
			dc_id=excluded.dc_id,
			owner_id=excluded.owner_id,
			updated_at=excluded.updated_at
	`
	getFileIDSelect = `
		SELECT unique_id, file_id, type, version, sub_version, dc_id, owner_id, updated_at
		FROM file_id
	`
	getFileIDByUniqueIDQuery = getFileIDSelect + "WHERE unique_id=$1"
	getFileIDsByOwnerQuery   = getFileIDSelect + "WHERE owner_id=$1 ORDER BY updated_at DESC, unique_id"
	deleteFileIDQuery        = "DELETE FROM file_id WHERE unique_id=$1"
)

type FileIDQuery struct {
	*dbutil.QueryHelper[*Entry]
}

// Entry is the latest file ID stored for a unique ID.
type Entry struct {
	qh *dbutil.QueryHelper[*Entry]

	UniqueID  string
	FileID    string
	Type      fileid.Type
	Version   fileid.Version
	DC        int32
	OwnerID   *uint32
	UpdatedAt time.Time
}

var _ dbutil.DataStruct[*Entry] = (*Entry)(nil)

func newEntry(qh *dbutil.QueryHelper[*Entry]) *Entry {
	return &Entry{qh: qh}
}

// NewEntry builds an entry for a decoded file ID. text is the file ID as it
// should be stored, usually the input it was decoded from.
func (fq *FileIDQuery) NewEntry(text string, id fileid.FileID) (*Entry, error) {
	unique, err := fileid.Project(id)
	if err != nil {
		return nil, err
	}
	uniqueText, err := fileid.EncodeUniqueID(unique)
	if err != nil {
		return nil, err
	}
	e := fq.New()
	e.UniqueID = uniqueText
	e.FileID = text
	e.Type = id.FileType()
	e.Version = id.FileVersion()
	if owner, ok := fileid.OwnerID(id); ok {
		e.OwnerID = &owner
	}
	switch id := id.(type) {
	case fileid.DocumentFileID:
		e.DC = id.DC
	case fileid.PhotoFileID:
		e.DC = id.DC
	case fileid.WebLocationFileID:
		e.DC = id.DC
	}
	return e, nil
}

// Put decodes text and stores it as the latest file ID of its unique ID.
func (fq *FileIDQuery) Put(ctx context.Context, text string) (*Entry, error) {
	id, err := fileid.DecodeFileID(text)
	if err != nil {
		return nil, err
	}
	e, err := fq.NewEntry(text, id)
	if err != nil {
		return nil, err
	}
	return e, e.Upsert(ctx)
}

// GetByUniqueID returns nil if nothing is stored for uniqueID.
func (fq *FileIDQuery) GetByUniqueID(ctx context.Context, uniqueID string) (*Entry, error) {
	return fq.QueryOne(ctx, getFileIDByUniqueIDQuery, uniqueID)
}

func (fq *FileIDQuery) ListByOwner(ctx context.Context, ownerID uint32) ([]*Entry, error) {
	return fq.QueryMany(ctx, getFileIDsByOwnerQuery, int64(ownerID))
}

func (fq *FileIDQuery) Delete(ctx context.Context, uniqueID string) error {
	return fq.Exec(ctx, deleteFileIDQuery, uniqueID)
}

func (e *Entry) sqlVariables() []any {
	var ownerID sql.NullInt64
	if e.OwnerID != nil {
		ownerID = sql.NullInt64{Int64: int64(*e.OwnerID), Valid: true}
	}
	return []any{
		e.UniqueID,
		e.FileID,
		uint32(e.Type),
		e.Version.Major,
		e.Version.Sub,
		e.DC,
		ownerID,
		e.UpdatedAt.UnixMilli(),
	}
}

// Upsert stores the entry, replacing the previous one with the same unique
// ID. A zero UpdatedAt is set to the current time.
func (e *Entry) Upsert(ctx context.Context) error {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now()
	}
	return e.qh.Exec(ctx, upsertFileIDQuery, e.sqlVariables()...)
}

// Decode decodes the stored file ID.
func (e *Entry) Decode() (fileid.FileID, error) {
	return fileid.DecodeFileID(e.FileID)
}

func (e *Entry) Scan(row dbutil.Scannable) (*Entry, error) {
	var ownerID sql.NullInt64
	var typ uint32
	var updatedAt int64
	err := row.Scan(
		&e.UniqueID,
		&e.FileID,
		&typ,
		&e.Version.Major,
		&e.Version.Sub,
		&e.DC,
		&ownerID,
		&updatedAt,
	)
	e.Type = fileid.Type(typ)
	if ownerID.Valid {
		owner := uint32(ownerID.Int64)
		e.OwnerID = &owner
	}
	e.UpdatedAt = time.UnixMilli(updatedAt)
	return e, err
}
