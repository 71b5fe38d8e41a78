package main

import (
	"fmt"

	"github.com/go-faster/jx"
	"github.com/k0kubun/pp/v3"

	"go.mau.fi/tgfileid/pkg/fileid"
	"go.mau.fi/tgfileid/pkg/fileidjson"
	"go.mau.fi/tgfileid/pkg/store"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

type decoded struct {
	Input    string
	FileID   fileid.FileID
	UniqueID string
	OwnerID  *uint32
}

type decodedUnique struct {
	Input    string
	UniqueID fileid.UniqueID
}

func (a *app) printer() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetOutput(a.out)
	printer.SetColoringEnabled(a.color)
	printer.SetExportedOnly(true)
	return printer
}

// writeJSON writes one JSON document per line.
func (a *app) writeJSON(fn func(e *jx.Encoder)) error {
	var e jx.Encoder
	e.Obj(fn)
	_, err := fmt.Fprintln(a.out, e.String())
	return err
}

func (a *app) printDecoded(input string, id fileid.FileID) error {
	out := decoded{Input: input, FileID: id}
	if unique, err := fileid.Project(id); err == nil {
		out.UniqueID = unique.String()
	}
	if owner, ok := fileid.OwnerID(id); ok {
		out.OwnerID = &owner
	}
	if a.format == formatPretty {
		_, err := a.printer().Println(out)
		return err
	}
	return a.writeJSON(func(e *jx.Encoder) {
		e.Field("input", func(e *jx.Encoder) { e.Str(input) })
		e.Field("file_id", func(e *jx.Encoder) { fileidjson.EncodeFileID(e, id) })
		if out.UniqueID != "" {
			e.Field("unique_id", func(e *jx.Encoder) { e.Str(out.UniqueID) })
		}
		if out.OwnerID != nil {
			e.Field("owner_id", func(e *jx.Encoder) { e.UInt32(*out.OwnerID) })
		}
	})
}

func (a *app) printUnique(input string, unique fileid.UniqueID) error {
	if a.format == formatPretty {
		_, err := a.printer().Println(decodedUnique{Input: input, UniqueID: unique})
		return err
	}
	return a.writeJSON(func(e *jx.Encoder) {
		e.Field("input", func(e *jx.Encoder) { e.Str(input) })
		e.Field("unique_id", func(e *jx.Encoder) { e.Str(unique.String()) })
		e.Field("unique", func(e *jx.Encoder) { fileidjson.EncodeUniqueID(e, unique) })
	})
}

func (a *app) printText(input, output string) error {
	if a.format == formatPretty {
		_, err := fmt.Fprintln(a.out, output)
		return err
	}
	return a.writeJSON(func(e *jx.Encoder) {
		if input != "" {
			e.Field("input", func(e *jx.Encoder) { e.Str(input) })
		}
		e.Field("output", func(e *jx.Encoder) { e.Str(output) })
	})
}

func (a *app) printEntry(entry *store.Entry) error {
	if a.format == formatPretty {
		_, err := a.printer().Println(entry)
		return err
	}
	return a.writeJSON(func(e *jx.Encoder) {
		e.Field("unique_id", func(e *jx.Encoder) { e.Str(entry.UniqueID) })
		e.Field("file_id", func(e *jx.Encoder) { e.Str(entry.FileID) })
		e.Field("type", func(e *jx.Encoder) { e.Str(entry.Type.String()) })
		e.Field("version", func(e *jx.Encoder) { e.Str(entry.Version.String()) })
		e.Field("dc_id", func(e *jx.Encoder) { e.Int32(entry.DC) })
		if entry.OwnerID != nil {
			e.Field("owner_id", func(e *jx.Encoder) { e.UInt32(*entry.OwnerID) })
		}
		e.Field("updated_at", func(e *jx.Encoder) { e.Int64(entry.UpdatedAt.UnixMilli()) })
	})
}
