package repository

import (
	"fmt"
	"strings"
)

// SplitTitleWords splits a comma-separated search string into its words.
// Empty fragments (a trailing comma, doubled commas) are dropped so they
// never turn into a match-everything predicate. An empty input yields nil,
// which callers treat as "no title filter".
func SplitTitleWords(raw string) []string {
	if raw == "" {
		return nil
	}
	var words []string
	for _, w := range strings.Split(raw, ",") {
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

// escapeLike escapes the LIKE metacharacters in a search word so user input
// is always matched literally.
func escapeLike(word string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(word)
}

// buildTitleSearch builds the search-and-page query over tbl_course.
//
// Each word becomes a case-insensitive substring predicate, OR-ed together.
// The same predicates are reused as a relevance expression counting how many
// of the supplied words a title matches, and results are ordered by that
// count descending with ascending id as the tie-break. Without words the
// query degrades to a plain id-ordered scan. Limit/offset are always pushed
// down to Postgres so a page never requires loading the full result set.
//
// The trigram GIN index on title (see migrations) lets Postgres answer the
// ILIKE predicates without a sequential scan.
func buildTitleSearch(words []string, limit, offset int) (string, []any) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, title, on_discount, price, discount_price, description, image_path, date_created, date_updated
		FROM tbl_course`)

	var (
		args       []any
		predicates []string
		relevance  []string
	)
	for _, w := range words {
		args = append(args, "%"+escapeLike(w)+"%")
		n := len(args)
		predicates = append(predicates, fmt.Sprintf("title ILIKE $%d", n))
		relevance = append(relevance, fmt.Sprintf("(CASE WHEN title ILIKE $%d THEN 1 ELSE 0 END)", n))
	}

	if len(predicates) > 0 {
		b.WriteString("\n\t\tWHERE " + strings.Join(predicates, " OR "))
		b.WriteString("\n\t\tORDER BY " + strings.Join(relevance, " + ") + " DESC, id ASC")
	} else {
		b.WriteString("\n\t\tORDER BY id ASC")
	}

	args = append(args, limit, offset)
	b.WriteString(fmt.Sprintf("\n\t\tLIMIT $%d OFFSET $%d", len(args)-1, len(args)))
	return b.String(), args
}
