// Package fileid implements decoding and encoding of Telegram Bot API file IDs
// and file unique IDs.
//
// A file ID is URL-safe base64 without padding of a zero-run-length encoded
// record. The record layout is:
//
//	type|dc|[reference]|id|access_hash|[photo location]|[sub_version]|version
//
// type (uint32) = base type, bit 24 = web location, bit 25 = file reference
// dc (int32) = datacenter ID
// reference (TL string) = file reference, only if bit 25 is set
// id (int64), access_hash (int64) = remote file location
// photo location = volume_id (int64), photo size source (uint32, version 4
// only) and the fields of that source
// sub_version (byte) = only present if version is 4
// version (byte) = 2 or 4
//
// Web location records replace id and access_hash with url (TL string) and
// access_hash (int64) and have no photo location.
package fileid

import (
	"bytes"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/gotd/td/bin"
)

// FileID is a decoded file ID. It is one of DocumentFileID, PhotoFileID or
// WebLocationFileID.
type FileID interface {
	// FileType returns the base type.
	FileType() Type
	// FileVersion returns the version the ID was decoded from or should be
	// encoded with.
	FileVersion() Version
	// HasReference reports whether the ID carries a file reference.
	HasReference() bool
	// HasWebLocation reports whether the ID points to a web location.
	HasWebLocation() bool

	encode(b *bin.Buffer, v Version) error
}

var (
	_ FileID = DocumentFileID{}
	_ FileID = PhotoFileID{}
	_ FileID = WebLocationFileID{}
)

// DocumentFileID references a document: voice notes, videos, stickers, audio,
// animations, video notes and generic files.
type DocumentFileID struct {
	Type          Type
	DC            int32
	ID            int64
	AccessHash    int64
	FileReference []byte
	Version       Version
}

func (d DocumentFileID) FileType() Type       { return d.Type }
func (d DocumentFileID) FileVersion() Version { return d.Version }
func (d DocumentFileID) HasReference() bool   { return d.FileReference != nil }
func (d DocumentFileID) HasWebLocation() bool { return false }

func (d DocumentFileID) String() string {
	return fmt.Sprintf("DocumentFileID(type=%s, dc=%d, id=%d, access_hash=%d, version=%s)",
		d.Type, d.DC, d.ID, d.AccessHash, d.Version)
}

// WithType returns a copy of d with a different document type.
func (d DocumentFileID) WithType(t Type) (DocumentFileID, error) {
	if !t.Known() || t.IsPhoto() {
		return d, errors.Wrapf(ErrUnknownBaseType, "document can't have type %s", t)
	}
	d.Type = t
	return d, nil
}

// SwapStickerType turns stickers into documents and documents into stickers.
func (d DocumentFileID) SwapStickerType() (DocumentFileID, error) {
	switch d.Type {
	case TypeSticker:
		return d.WithType(TypeDocument)
	case TypeDocument:
		return d.WithType(TypeSticker)
	default:
		return d, errors.Wrapf(ErrUnknownBaseType, "can't swap sticker type of %s", d.Type)
	}
}

// PhotoFileID references a photo, a profile photo or a thumbnail.
type PhotoFileID struct {
	Type          Type
	DC            int32
	ID            int64
	AccessHash    int64
	FileReference []byte
	Version       Version
	Source        PhotoSizeSource
}

func (p PhotoFileID) FileType() Type       { return p.Type }
func (p PhotoFileID) FileVersion() Version { return p.Version }
func (p PhotoFileID) HasReference() bool   { return p.FileReference != nil }
func (p PhotoFileID) HasWebLocation() bool { return false }

func (p PhotoFileID) String() string {
	return fmt.Sprintf("PhotoFileID(type=%s, dc=%d, id=%d, access_hash=%d, source=%s, version=%s)",
		p.Type, p.DC, p.ID, p.AccessHash, p.Source, p.Version)
}

// WebLocationFileID references a file hosted on the web.
type WebLocationFileID struct {
	Type          Type
	DC            int32
	FileReference []byte
	URL           string
	AccessHash    int64
	Version       Version
}

func (w WebLocationFileID) FileType() Type       { return w.Type }
func (w WebLocationFileID) FileVersion() Version { return w.Version }
func (w WebLocationFileID) HasReference() bool   { return w.FileReference != nil }
func (w WebLocationFileID) HasWebLocation() bool { return true }

func (w WebLocationFileID) String() string {
	return fmt.Sprintf("WebLocationFileID(type=%s, url=%q, access_hash=%d, version=%s)",
		w.Type, w.URL, w.AccessHash, w.Version)
}

// PhotoSizeSourceKind tells how the location of a photo size is described.
type PhotoSizeSourceKind uint32

const (
	// PhotoSizeSourceLegacy is used for IDs with the deprecated secret field.
	PhotoSizeSourceLegacy PhotoSizeSourceKind = iota
	// PhotoSizeSourceThumbnail is used for document and photo thumbnails.
	PhotoSizeSourceThumbnail
	PhotoSizeSourceDialogPhotoSmall
	PhotoSizeSourceDialogPhotoBig
	PhotoSizeSourceStickerSetThumbnail
)

// PhotoSizeSource is the location of a photo size. VolumeID and LocalID are
// always present; the other fields belong to a single Kind each and are
// ignored for other kinds.
type PhotoSizeSource struct {
	Kind     PhotoSizeSourceKind
	VolumeID int64
	LocalID  int32

	// Legacy.
	Secret int64

	// Thumbnail.
	FileType      uint32
	ThumbnailType []byte

	// Dialog photo, small or big.
	DialogID         int64
	DialogAccessHash int64

	// Sticker set thumbnail.
	StickerSetID         int64
	StickerSetAccessHash int64
}

func (s PhotoSizeSource) String() string {
	switch s.Kind {
	case PhotoSizeSourceLegacy:
		return fmt.Sprintf("%s(volume_id=%d, local_id=%d, secret=%d)", s.Kind, s.VolumeID, s.LocalID, s.Secret)
	case PhotoSizeSourceThumbnail:
		return fmt.Sprintf("%s(volume_id=%d, local_id=%d, file_type=%d, thumbnail_type=%q)",
			s.Kind, s.VolumeID, s.LocalID, s.FileType, s.ThumbnailType)
	case PhotoSizeSourceDialogPhotoSmall, PhotoSizeSourceDialogPhotoBig:
		return fmt.Sprintf("%s(volume_id=%d, local_id=%d, dialog_id=%d, dialog_access_hash=%d)",
			s.Kind, s.VolumeID, s.LocalID, s.DialogID, s.DialogAccessHash)
	case PhotoSizeSourceStickerSetThumbnail:
		return fmt.Sprintf("%s(volume_id=%d, local_id=%d, sticker_set_id=%d, sticker_set_access_hash=%d)",
			s.Kind, s.VolumeID, s.LocalID, s.StickerSetID, s.StickerSetAccessHash)
	default:
		return fmt.Sprintf("%s(volume_id=%d, local_id=%d)", s.Kind, s.VolumeID, s.LocalID)
	}
}

// Equal reports whether both sources describe the same location. Fields of
// other kinds are not compared.
func (s PhotoSizeSource) Equal(o PhotoSizeSource) bool {
	if s.Kind != o.Kind || s.VolumeID != o.VolumeID || s.LocalID != o.LocalID {
		return false
	}
	switch s.Kind {
	case PhotoSizeSourceLegacy:
		return s.Secret == o.Secret
	case PhotoSizeSourceThumbnail:
		return s.FileType == o.FileType && bytes.Equal(s.ThumbnailType, o.ThumbnailType)
	case PhotoSizeSourceDialogPhotoSmall, PhotoSizeSourceDialogPhotoBig:
		return s.DialogID == o.DialogID && s.DialogAccessHash == o.DialogAccessHash
	case PhotoSizeSourceStickerSetThumbnail:
		return s.StickerSetID == o.StickerSetID && s.StickerSetAccessHash == o.StickerSetAccessHash
	default:
		return true
	}
}
