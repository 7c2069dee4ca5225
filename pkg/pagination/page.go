package pagination

import "iter"

// Page is one window of a newest-first listing.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// Collect reads one page from seq, which must yield items newest first with strictly
// decreasing CreatedAt. keyOf returns the cursor components of an item. With a cursor,
// items are skipped up to and including the one the cursor names; if that item is no
// longer in the sequence, reading resumes at the first item created strictly before the
// cursor. Items sharing a CreatedAt with a vanished cursor item would be skipped, so
// producers must not repeat timestamps.
func Collect[T any](seq iter.Seq[T], params Params, keyOf func(T) Cursor) (Page[T], error) {
	cursor, err := ParseCursor(params.Cursor)
	if err != nil {
		return Page[T]{}, err
	}
	limit := NormalizeLimit(params.Limit)

	items := make([]T, 0, limit+1)
	skipping := cursor != nil
	for item := range seq {
		if skipping {
			key := keyOf(item)
			if key.ID == cursor.ID {
				skipping = false
				continue
			}
			if !key.CreatedAt.Before(cursor.CreatedAt) {
				continue
			}
			skipping = false
		}
		items = append(items, item)
		if len(items) > limit {
			break
		}
	}

	page := Page[T]{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.NextCursor = EncodeCursor(keyOf(page.Items[limit-1]))
	}
	return page, nil
}
