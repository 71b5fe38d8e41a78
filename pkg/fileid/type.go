package fileid

import "github.com/go-faster/errors"

//go:generate go tool stringer -type=Type -trimprefix=Type
//go:generate go tool stringer -type=PhotoSizeSourceKind -trimprefix=PhotoSizeSource
//go:generate go tool stringer -type=UniqueKind -trimprefix=Unique

// Type is the base type of a file ID.
type Type uint32

const (
	TypeThumbnail Type = iota
	TypeProfilePhoto
	TypePhoto
	TypeVoice
	TypeVideo
	TypeDocument
	TypeEncrypted
	TypeTemp
	TypeSticker
	TypeAudio
	TypeAnimation
	TypeEncryptedThumbnail
	TypeWallpaper
	TypeVideoNote
	TypeSecureRaw
	TypeSecure
	TypeBackground
	TypeSize
	TypeNone
)

const (
	webLocationFlag   = 1 << 24
	fileReferenceFlag = 1 << 25
)

// Known reports whether t is one of the defined types.
func (t Type) Known() bool {
	return t <= TypeNone
}

// IsPhoto reports whether records of type t carry a photo location.
func (t Type) IsPhoto() bool {
	switch t {
	case TypeThumbnail, TypeProfilePhoto, TypePhoto:
		return true
	default:
		return false
	}
}

// IsDocument reports whether t is one of the document types.
func (t Type) IsDocument() bool {
	switch t {
	case TypeVoice, TypeVideo, TypeDocument, TypeSticker, TypeAudio, TypeVideoNote, TypeAnimation:
		return true
	default:
		return false
	}
}

// SplitTypeTag splits the leading type field of a record into the base type
// and the file reference and web location flags.
func SplitTypeTag(tag uint32) (t Type, hasReference, hasWebLocation bool) {
	hasReference = tag&fileReferenceFlag != 0
	hasWebLocation = tag&webLocationFlag != 0
	return Type(tag &^ (fileReferenceFlag | webLocationFlag)), hasReference, hasWebLocation
}

// JoinTypeTag is the inverse of SplitTypeTag.
func JoinTypeTag(t Type, hasReference, hasWebLocation bool) (uint32, error) {
	if !t.Known() {
		return 0, errors.Wrapf(ErrUnknownBaseType, "type %d", uint32(t))
	}
	tag := uint32(t)
	if hasReference {
		tag |= fileReferenceFlag
	}
	if hasWebLocation {
		tag |= webLocationFlag
	}
	return tag, nil
}
