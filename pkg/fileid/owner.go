package fileid

// OwnerID extracts the ID of the account that uploaded a sticker.
//
// This is a heuristic: some sticker IDs have the uploader's ID stored in bits
// 32 to 55 of the document ID. It's only attempted for stickers with version 2
// or 4, and even then the result may be meaningless.
func OwnerID(id FileID) (uint32, bool) {
	doc, ok := id.(DocumentFileID)
	if !ok || doc.Type != TypeSticker {
		return 0, false
	}
	if doc.Version.Major != 2 && doc.Version.Major != 4 {
		return 0, false
	}
	return uint32(uint64(doc.ID)>>32) & (1<<24 - 1), true
}
