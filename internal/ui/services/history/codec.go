package history

import (
	"strings"

	"lotview/internal/domain"
)

// Encode renders an item as its stored key: "<query>[ _user[:login]][ _finished]".
// The query is escaped so that the first unescaped " _" always starts the tags.
func Encode(query string, isUserSearch bool, userLogin string, isFinished bool) string {
	var b strings.Builder
	b.WriteString(EscapeQuery(strings.TrimSpace(query)))
	if isUserSearch {
		b.WriteString(userTag)
		if login := strings.TrimSpace(userLogin); login != "" {
			b.WriteString(":")
			b.WriteString(login)
		}
	}
	if isFinished {
		b.WriteString(finishedTag)
	}
	return b.String()
}

// Decode is the inverse of Encode. A tag section it does not understand is kept as query text.
func Decode(id int64, encoded string) domain.SearchHistoryItem {
	item := domain.SearchHistoryItem{ID: id}

	i := strings.Index(encoded, tagMark)
	if i < 0 {
		item.Query = strings.TrimSpace(unescapeQuery(encoded))
		return item
	}

	tags := encoded[i:]
	finished := strings.HasSuffix(tags, finishedTag)
	tags = strings.TrimSuffix(tags, finishedTag)

	switch {
	case tags == "":
	case tags == userTag:
		item.IsUsersSearch = true
	case strings.HasPrefix(tags, userTag+":") && len(tags) > len(userTag)+1:
		item.IsUsersSearch = true
		item.UserLogin = tags[len(userTag)+1:]
	default:
		item.Query = strings.TrimSpace(unescapeQuery(encoded))
		return item
	}

	item.IsFinished = finished
	item.Query = strings.TrimSpace(unescapeQuery(encoded[:i]))
	return item
}

// EscapeQuery makes query text safe to precede the tags. It preserves prefixes,
// so an escaped search prefix still matches escaped stored queries.
func EscapeQuery(query string) string {
	query = strings.ReplaceAll(query, `\`, `\\`)
	return strings.ReplaceAll(query, tagMark, ` \_`)
}

func unescapeQuery(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
