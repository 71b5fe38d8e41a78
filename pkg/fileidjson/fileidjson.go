// Package fileidjson renders decoded identifiers as JSON and reads them back.
//
// A file ID looks like this:
//
//	{
//	  "kind": "document",
//	  "type": 8,
//	  "type_name": "Sticker",
//	  "dc_id": 4,
//	  "id": 984697977903775939,
//	  "access_hash": -8653026958495010306,
//	  "file_reference": "AQAAAuJfQlgxs1VHA3o1NExEy1mznX7AqA==",
//	  "version": 4,
//	  "sub_version": 27
//	}
//
// Photo IDs have a photo_size_source object and web location IDs have url
// instead of id. file_reference is omitted when the ID has none.
package fileidjson

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"go.mau.fi/tgfileid/pkg/fileid"
)

// Values of the kind field.
const (
	KindDocument    = "document"
	KindPhoto       = "photo"
	KindWebLocation = "web_location"
)

// EncodeFileID writes id as a JSON object.
func EncodeFileID(e *jx.Encoder, id fileid.FileID) {
	e.Obj(func(e *jx.Encoder) {
		switch id := id.(type) {
		case fileid.DocumentFileID:
			e.Field("kind", func(e *jx.Encoder) { e.Str(KindDocument) })
			encodeHeader(e, id.Type, id.DC, id.FileReference)
			encodeLocation(e, id.ID, id.AccessHash)
		case fileid.PhotoFileID:
			e.Field("kind", func(e *jx.Encoder) { e.Str(KindPhoto) })
			encodeHeader(e, id.Type, id.DC, id.FileReference)
			encodeLocation(e, id.ID, id.AccessHash)
			e.Field("photo_size_source", func(e *jx.Encoder) { encodeSource(e, id.Source) })
		case fileid.WebLocationFileID:
			e.Field("kind", func(e *jx.Encoder) { e.Str(KindWebLocation) })
			encodeHeader(e, id.Type, id.DC, id.FileReference)
			e.Field("url", func(e *jx.Encoder) { e.Str(id.URL) })
			e.Field("access_hash", func(e *jx.Encoder) { e.Int64(id.AccessHash) })
		}
		if id != nil {
			v := id.FileVersion()
			e.Field("version", func(e *jx.Encoder) { e.UInt8(v.Major) })
			e.Field("sub_version", func(e *jx.Encoder) { e.UInt8(v.Sub) })
		}
	})
}

func encodeHeader(e *jx.Encoder, t fileid.Type, dc int32, reference []byte) {
	e.Field("type", func(e *jx.Encoder) { e.UInt32(uint32(t)) })
	e.Field("type_name", func(e *jx.Encoder) { e.Str(t.String()) })
	e.Field("dc_id", func(e *jx.Encoder) { e.Int32(dc) })
	if reference != nil {
		e.Field("file_reference", func(e *jx.Encoder) { e.Base64(reference) })
	}
}

func encodeLocation(e *jx.Encoder, id, accessHash int64) {
	e.Field("id", func(e *jx.Encoder) { e.Int64(id) })
	e.Field("access_hash", func(e *jx.Encoder) { e.Int64(accessHash) })
}

func encodeSource(e *jx.Encoder, s fileid.PhotoSizeSource) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("kind", func(e *jx.Encoder) { e.UInt32(uint32(s.Kind)) })
		e.Field("kind_name", func(e *jx.Encoder) { e.Str(s.Kind.String()) })
		e.Field("volume_id", func(e *jx.Encoder) { e.Int64(s.VolumeID) })
		e.Field("local_id", func(e *jx.Encoder) { e.Int32(s.LocalID) })
		switch s.Kind {
		case fileid.PhotoSizeSourceLegacy:
			e.Field("secret", func(e *jx.Encoder) { e.Int64(s.Secret) })
		case fileid.PhotoSizeSourceThumbnail:
			e.Field("file_type", func(e *jx.Encoder) { e.UInt32(s.FileType) })
			e.Field("thumbnail_type", func(e *jx.Encoder) { e.Str(string(s.ThumbnailType)) })
		case fileid.PhotoSizeSourceDialogPhotoSmall, fileid.PhotoSizeSourceDialogPhotoBig:
			e.Field("dialog_id", func(e *jx.Encoder) { e.Int64(s.DialogID) })
			e.Field("dialog_access_hash", func(e *jx.Encoder) { e.Int64(s.DialogAccessHash) })
		case fileid.PhotoSizeSourceStickerSetThumbnail:
			e.Field("sticker_set_id", func(e *jx.Encoder) { e.Int64(s.StickerSetID) })
			e.Field("sticker_set_access_hash", func(e *jx.Encoder) { e.Int64(s.StickerSetAccessHash) })
		}
	})
}

// EncodeUniqueID writes u as a JSON object.
func EncodeUniqueID(e *jx.Encoder, u fileid.UniqueID) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("kind", func(e *jx.Encoder) { e.UInt32(uint32(u.Kind)) })
		e.Field("kind_name", func(e *jx.Encoder) { e.Str(u.Kind.String()) })
		switch u.Kind {
		case fileid.UniqueWeb:
			e.Field("url", func(e *jx.Encoder) { e.Str(u.URL) })
		case fileid.UniquePhoto:
			e.Field("volume_id", func(e *jx.Encoder) { e.Int64(u.VolumeID) })
			e.Field("local_id", func(e *jx.Encoder) { e.Int32(u.LocalID) })
		default:
			e.Field("id", func(e *jx.Encoder) { e.UInt64(u.ID) })
		}
	})
}

// MarshalFileID returns the JSON form of id.
func MarshalFileID(id fileid.FileID) []byte {
	var e jx.Encoder
	EncodeFileID(&e, id)
	return e.Bytes()
}

type rawFileID struct {
	kind          string
	typ           uint32
	dc            int32
	id            int64
	accessHash    int64
	fileReference []byte
	url           string
	version       fileid.Version
	source        fileid.PhotoSizeSource
	hasSource     bool
}

// DecodeFileID reads a file ID in the format written by EncodeFileID. Unknown
// fields are skipped.
func DecodeFileID(d *jx.Decoder) (fileid.FileID, error) {
	var raw rawFileID
	if err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		switch key {
		case "kind":
			raw.kind, err = d.Str()
		case "type":
			raw.typ, err = d.UInt32()
		case "dc_id":
			raw.dc, err = d.Int32()
		case "id":
			raw.id, err = d.Int64()
		case "access_hash":
			raw.accessHash, err = d.Int64()
		case "file_reference":
			// null means no reference, "" is an empty one.
			raw.fileReference, err = d.Base64()
		case "url":
			raw.url, err = d.Str()
		case "version":
			raw.version.Major, err = d.UInt8()
		case "sub_version":
			raw.version.Sub, err = d.UInt8()
		case "photo_size_source":
			raw.hasSource = true
			raw.source, err = decodeSource(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if !raw.version.IsZero() && !raw.version.Supported() {
		return nil, errors.Wrapf(fileid.ErrUnsupportedVersion, "version %s", raw.version)
	}

	typ := fileid.Type(raw.typ)
	switch raw.kind {
	case KindDocument:
		return fileid.DocumentFileID{
			Type:          typ,
			DC:            raw.dc,
			ID:            raw.id,
			AccessHash:    raw.accessHash,
			FileReference: raw.fileReference,
			Version:       raw.version,
		}, nil
	case KindPhoto:
		if !raw.hasSource {
			return nil, errors.New("photo without photo_size_source")
		}
		return fileid.PhotoFileID{
			Type:          typ,
			DC:            raw.dc,
			ID:            raw.id,
			AccessHash:    raw.accessHash,
			FileReference: raw.fileReference,
			Version:       raw.version,
			Source:        raw.source,
		}, nil
	case KindWebLocation:
		return fileid.WebLocationFileID{
			Type:          typ,
			DC:            raw.dc,
			FileReference: raw.fileReference,
			URL:           raw.url,
			AccessHash:    raw.accessHash,
			Version:       raw.version,
		}, nil
	default:
		return nil, errors.Errorf("unknown kind %q", raw.kind)
	}
}

// UnmarshalFileID parses the JSON form of a file ID.
func UnmarshalFileID(data []byte) (fileid.FileID, error) {
	return DecodeFileID(jx.DecodeBytes(data))
}

func decodeSource(d *jx.Decoder) (s fileid.PhotoSizeSource, err error) {
	err = d.Obj(func(d *jx.Decoder, key string) (err error) {
		switch key {
		case "kind":
			var kind uint32
			kind, err = d.UInt32()
			s.Kind = fileid.PhotoSizeSourceKind(kind)
		case "volume_id":
			s.VolumeID, err = d.Int64()
		case "local_id":
			s.LocalID, err = d.Int32()
		case "secret":
			s.Secret, err = d.Int64()
		case "file_type":
			s.FileType, err = d.UInt32()
		case "thumbnail_type":
			var str string
			str, err = d.Str()
			s.ThumbnailType = []byte(str)
		case "dialog_id":
			s.DialogID, err = d.Int64()
		case "dialog_access_hash":
			s.DialogAccessHash, err = d.Int64()
		case "sticker_set_id":
			s.StickerSetID, err = d.Int64()
		case "sticker_set_access_hash":
			s.StickerSetAccessHash, err = d.Int64()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode photo_size_source.%s", key)
		}
		return nil
	})
	return s, err
}
