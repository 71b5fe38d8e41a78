package fileid

import (
	"encoding/binary"

	"github.com/go-faster/errors"
	"github.com/gotd/td/bin"
)

// UniqueKind is the type of a file unique ID.
type UniqueKind uint32

const (
	UniqueWeb UniqueKind = iota
	UniquePhoto
	UniqueDocument
	UniqueSecure
	UniqueEncrypted
	UniqueTemp
)

// photoUniqueLength is the length of a decompressed photo unique ID:
// kind, volume ID and local ID.
const photoUniqueLength = 4 + 8 + 4

var uniqueKinds = map[Type]UniqueKind{
	TypePhoto:              UniquePhoto,
	TypeProfilePhoto:       UniquePhoto,
	TypeThumbnail:          UniquePhoto,
	TypeEncryptedThumbnail: UniquePhoto,
	TypeWallpaper:          UniquePhoto,

	TypeVideo:      UniqueDocument,
	TypeVoice:      UniqueDocument,
	TypeDocument:   UniqueDocument,
	TypeSticker:    UniqueDocument,
	TypeAudio:      UniqueDocument,
	TypeAnimation:  UniqueDocument,
	TypeVideoNote:  UniqueDocument,
	TypeBackground: UniqueDocument,

	TypeSecure:    UniqueSecure,
	TypeSecureRaw: UniqueSecure,

	TypeEncrypted: UniqueEncrypted,

	TypeTemp: UniqueTemp,
}

// UniqueKindOf returns the unique ID kind for a base type.
func UniqueKindOf(t Type) (UniqueKind, bool) {
	k, ok := uniqueKinds[t]
	return k, ok
}

// UniqueID is a file unique ID. It stays the same when Telegram issues a new
// file ID for the same file, so it can be used to compare files, but it can't
// be used to download anything.
//
// Web IDs use URL, photo IDs use VolumeID and LocalID, all other kinds use ID.
type UniqueID struct {
	Kind     UniqueKind
	URL      string
	VolumeID int64
	LocalID  int32
	ID       uint64
}

func (u UniqueID) String() string {
	s, err := EncodeUniqueID(u)
	if err != nil {
		return "UniqueID(" + err.Error() + ")"
	}
	return s
}

// Project derives the unique ID of a file ID.
func Project(id FileID) (UniqueID, error) {
	switch id := id.(type) {
	case WebLocationFileID:
		return UniqueID{Kind: UniqueWeb, URL: id.URL}, nil
	case PhotoFileID:
		kind, ok := uniqueKinds[id.Type]
		if !ok || kind != UniquePhoto {
			return UniqueID{}, errors.Wrapf(ErrUnknownBaseType, "photo with type %s", id.Type)
		}
		return UniqueID{Kind: UniquePhoto, VolumeID: id.Source.VolumeID, LocalID: id.Source.LocalID}, nil
	case DocumentFileID:
		kind, ok := uniqueKinds[id.Type]
		if !ok {
			return UniqueID{}, errors.Wrapf(ErrUnknownBaseType, "no unique ID for type %s", id.Type)
		}
		if kind == UniquePhoto {
			return UniqueID{}, errors.Wrapf(ErrUnknownBaseType, "type %s needs a photo location", id.Type)
		}
		return UniqueID{Kind: kind, ID: uint64(id.ID)}, nil
	default:
		return UniqueID{}, errors.Errorf("unexpected file ID %T", id)
	}
}

// DecodeUniqueID decodes a unique ID. If legacyFix is set, numeric IDs that
// are shorter than 8 bytes are padded with zero bytes.
func DecodeUniqueID(s string, legacyFix bool) (UniqueID, error) {
	return Decoder{LegacyFix: legacyFix}.UniqueID(s)
}

// UniqueID decodes the text form of a unique ID.
func (d Decoder) UniqueID(s string) (UniqueID, error) {
	raw, err := DecodeText(s)
	if err != nil {
		return UniqueID{}, err
	}
	return d.UniqueRecord(RLEDecode(raw))
}

// UniqueRecord decodes a decompressed unique ID record.
func (d Decoder) UniqueRecord(record []byte) (UniqueID, error) {
	r := newReader(record)
	tag, err := r.uint32("kind")
	if err != nil {
		return UniqueID{}, err
	}
	u := UniqueID{Kind: UniqueKind(tag)}
	if u.Kind > UniqueTemp {
		return UniqueID{}, errors.Wrapf(ErrUnknownBaseType, "unique kind %d", tag)
	}

	switch {
	case u.Kind == UniqueWeb:
		url, err := r.lengthPrefixed("url")
		if err != nil {
			return UniqueID{}, err
		}
		u.URL = string(url)
	case len(record) == photoUniqueLength:
		if u.VolumeID, err = r.int64("volume_id"); err != nil {
			return UniqueID{}, err
		}
		if u.LocalID, err = r.int32("local_id"); err != nil {
			return UniqueID{}, err
		}
	default:
		raw := r.rest()
		if len(raw) < 8 {
			if !d.LegacyFix {
				return UniqueID{}, errors.Wrapf(ErrMalformedField, "read id: %d bytes left", len(raw))
			}
			padded := make([]byte, 8)
			copy(padded, raw)
			raw = padded
		}
		u.ID = binary.LittleEndian.Uint64(raw)
		r.buf.Buf = raw[8:]
	}

	if left := len(r.rest()); left > 0 {
		d.warn(Warning{Kind: WarningTrailingData, Type: tag, Bytes: left})
	}
	return u, nil
}

// EncodeUniqueID encodes u to its text form. Fields are always written in
// full width.
func EncodeUniqueID(u UniqueID) (string, error) {
	var b bin.Buffer
	b.PutUint32(uint32(u.Kind))
	switch u.Kind {
	case UniqueWeb:
		if err := putLengthPrefixed(&b, "url", []byte(u.URL)); err != nil {
			return "", err
		}
	case UniquePhoto:
		b.PutLong(u.VolumeID)
		b.PutInt32(u.LocalID)
	case UniqueDocument, UniqueSecure, UniqueEncrypted, UniqueTemp:
		b.PutLong(int64(u.ID))
	default:
		return "", errors.Wrapf(ErrUnknownBaseType, "unique kind %d", uint32(u.Kind))
	}
	return EncodeText(RLEEncode(b.Buf)), nil
}
