package fileid

import (
	"github.com/go-faster/errors"
	"github.com/gotd/td/bin"
)

// EncodeFileID encodes id to its text form with the version of id, or
// LatestVersion if it has none.
func EncodeFileID(id FileID) (string, error) {
	if id == nil {
		return "", errors.New("nil file ID")
	}
	v := id.FileVersion()
	if v.IsZero() {
		v = LatestVersion
	}
	return EncodeFileIDVersion(id, v)
}

// EncodeFileIDVersion encodes id to its text form using version v.
func EncodeFileIDVersion(id FileID, v Version) (string, error) {
	record, err := EncodeRecord(id, v)
	if err != nil {
		return "", err
	}
	return EncodeText(RLEEncode(record)), nil
}

// EncodeRecord encodes id to an uncompressed record ending with the version
// suffix of v.
func EncodeRecord(id FileID, v Version) ([]byte, error) {
	if id == nil {
		return nil, errors.New("nil file ID")
	}
	if !v.Supported() {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %s", v)
	}
	var buf bin.Buffer
	if err := id.encode(&buf, v); err != nil {
		return nil, err
	}
	return AppendVersion(buf.Buf, v)
}

func putHeader(b *bin.Buffer, t Type, dc int32, reference []byte, webLocation bool) error {
	tag, err := JoinTypeTag(t, reference != nil, webLocation)
	if err != nil {
		return err
	}
	b.PutUint32(tag)
	b.PutInt32(dc)
	if reference != nil {
		return putLengthPrefixed(b, "file_reference", reference)
	}
	return nil
}

func (d DocumentFileID) encode(b *bin.Buffer, _ Version) error {
	if d.Type.IsPhoto() {
		return errors.Wrapf(ErrUnknownBaseType, "document can't have type %s", d.Type)
	}
	if err := putHeader(b, d.Type, d.DC, d.FileReference, false); err != nil {
		return err
	}
	b.PutLong(d.ID)
	b.PutLong(d.AccessHash)
	return nil
}

func (p PhotoFileID) encode(b *bin.Buffer, v Version) error {
	if !p.Type.IsPhoto() {
		return errors.Wrapf(ErrUnknownBaseType, "photo can't have type %s", p.Type)
	}
	if err := putHeader(b, p.Type, p.DC, p.FileReference, false); err != nil {
		return err
	}
	b.PutLong(p.ID)
	b.PutLong(p.AccessHash)
	return p.Source.encode(b, v)
}

func (s PhotoSizeSource) encode(b *bin.Buffer, v Version) error {
	if v.Major < 4 && s.Kind != PhotoSizeSourceLegacy {
		return errors.Wrapf(ErrUnknownPhotoSizeSource, "%s can't be encoded with version %s", s.Kind, v)
	}
	b.PutLong(s.VolumeID)
	if v.Major >= 4 {
		b.PutUint32(uint32(s.Kind))
	}
	switch s.Kind {
	case PhotoSizeSourceLegacy:
		b.PutLong(s.Secret)
	case PhotoSizeSourceThumbnail:
		b.PutUint32(s.FileType)
		if err := putThumbnailType(b, s.ThumbnailType); err != nil {
			return err
		}
	case PhotoSizeSourceDialogPhotoSmall, PhotoSizeSourceDialogPhotoBig:
		b.PutLong(s.DialogID)
		b.PutLong(s.DialogAccessHash)
	case PhotoSizeSourceStickerSetThumbnail:
		b.PutLong(s.StickerSetID)
		b.PutLong(s.StickerSetAccessHash)
	default:
		return errors.Wrapf(ErrUnknownPhotoSizeSource, "kind %d", uint32(s.Kind))
	}
	b.PutInt32(s.LocalID)
	return nil
}

func (w WebLocationFileID) encode(b *bin.Buffer, _ Version) error {
	if err := putHeader(b, w.Type, w.DC, w.FileReference, true); err != nil {
		return err
	}
	if err := putLengthPrefixed(b, "url", []byte(w.URL)); err != nil {
		return err
	}
	b.PutLong(w.AccessHash)
	return nil
}
