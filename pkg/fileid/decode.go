package fileid

import (
	"github.com/go-faster/errors"
)

// Decoder decodes file IDs and file unique IDs. The zero value is ready to use
// and discards warnings.
type Decoder struct {
	// OnWarning is called for non-fatal problems, like unknown base types or
	// leftover data after the last field.
	OnWarning func(Warning)
	// LegacyFix pads truncated numeric IDs in unique IDs with zero bytes.
	// Versions of some encoders dropped a trailing zero run when compressing,
	// so unique IDs ending in zero bytes got shorter than 12 bytes.
	LegacyFix bool
}

func (d Decoder) warn(w Warning) {
	if d.OnWarning != nil {
		d.OnWarning(w)
	}
}

// DecodeFileID decodes a file ID with the default Decoder.
func DecodeFileID(s string) (FileID, error) {
	return Decoder{}.FileID(s)
}

// FileID decodes the text form of a file ID.
func (d Decoder) FileID(s string) (FileID, error) {
	raw, err := DecodeText(s)
	if err != nil {
		return nil, err
	}
	return d.Record(RLEDecode(raw))
}

// Record decodes a decompressed file ID record, version suffix included.
func (d Decoder) Record(record []byte) (FileID, error) {
	payload, version, err := StripVersion(record)
	if err != nil {
		return nil, err
	}
	r := newReader(payload)

	tag, err := r.uint32("type")
	if err != nil {
		return nil, err
	}
	typ, hasReference, hasWebLocation := SplitTypeTag(tag)
	dc, err := r.int32("dc_id")
	if err != nil {
		return nil, err
	}
	var reference []byte
	if hasReference {
		if reference, err = r.lengthPrefixed("file_reference"); err != nil {
			return nil, err
		}
	}

	var id FileID
	if hasWebLocation {
		url, err := r.lengthPrefixed("url")
		if err != nil {
			return nil, err
		}
		accessHash, err := r.int64("access_hash")
		if err != nil {
			return nil, err
		}
		id = WebLocationFileID{
			Type:          typ,
			DC:            dc,
			FileReference: reference,
			URL:           string(url),
			AccessHash:    accessHash,
			Version:       version,
		}
	} else {
		mediaID, err := r.int64("id")
		if err != nil {
			return nil, err
		}
		accessHash, err := r.int64("access_hash")
		if err != nil {
			return nil, err
		}
		if typ.IsPhoto() {
			source, err := r.photoSizeSource(version)
			if err != nil {
				return nil, err
			}
			id = PhotoFileID{
				Type:          typ,
				DC:            dc,
				ID:            mediaID,
				AccessHash:    accessHash,
				FileReference: reference,
				Version:       version,
				Source:        source,
			}
		} else {
			if !typ.IsDocument() {
				d.warn(Warning{Kind: WarningUnknownType, Type: uint32(typ)})
			}
			id = DocumentFileID{
				Type:          typ,
				DC:            dc,
				ID:            mediaID,
				AccessHash:    accessHash,
				FileReference: reference,
				Version:       version,
			}
		}
	}

	if left := len(r.rest()); left > 0 {
		d.warn(Warning{Kind: WarningTrailingData, Type: uint32(typ), Bytes: left})
	}
	return id, nil
}

func (r *reader) photoSizeSource(version Version) (src PhotoSizeSource, err error) {
	if src.VolumeID, err = r.int64("volume_id"); err != nil {
		return src, err
	}
	if version.Major >= 4 {
		kind, err := r.uint32("photo_size_source")
		if err != nil {
			return src, err
		}
		src.Kind = PhotoSizeSourceKind(kind)
	}

	switch src.Kind {
	case PhotoSizeSourceLegacy:
		src.Secret, err = r.int64("secret")
	case PhotoSizeSourceThumbnail:
		if src.FileType, err = r.uint32("file_type"); err == nil {
			src.ThumbnailType, err = r.thumbnailType("thumbnail_type")
		}
	case PhotoSizeSourceDialogPhotoSmall, PhotoSizeSourceDialogPhotoBig:
		if src.DialogID, err = r.int64("dialog_id"); err == nil {
			src.DialogAccessHash, err = r.int64("dialog_access_hash")
		}
	case PhotoSizeSourceStickerSetThumbnail:
		if src.StickerSetID, err = r.int64("sticker_set_id"); err == nil {
			src.StickerSetAccessHash, err = r.int64("sticker_set_access_hash")
		}
	default:
		return src, errors.Wrapf(ErrUnknownPhotoSizeSource, "kind %d", uint32(src.Kind))
	}
	if err != nil {
		return src, err
	}
	src.LocalID, err = r.int32("local_id")
	return src, err
}
