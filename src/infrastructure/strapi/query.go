package strapi

import (
	"strconv"
	"strings"
)

// SetPage returns the url with its pagination[page] parameter set to
// the given page, preserving every other query parameter verbatim.
// An existing page parameter is overwritten, never duplicated.
func SetPage(rawUrl string, page int) string {
	base, query, _ := strings.Cut(rawUrl, "?")
	pairs := make([]string, 0, strings.Count(query, "&")+2)
	if query != "" {
		for _, pair := range strings.Split(query, "&") {
			key, _, _ := strings.Cut(pair, "=")
			if key == "pagination[page]" || key == "pagination%5Bpage%5D" {
				continue
			}
			pairs = append(pairs, pair)
		}
	}
	pairs = append(pairs, "pagination[page]="+strconv.Itoa(page))
	return base + "?" + strings.Join(pairs, "&")
}

// Filtered appends an equality filter to a collection uri, joining
// with "?" or "&" depending on whether the uri already carries query
// parameters. Ampersands in the value are escaped as &amp; so they do
// not terminate the query parameter.
func Filtered(uri, field, value string) string {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + "filters[" + field + "][$eq]=" + strings.ReplaceAll(value, "&", "&amp;")
}

// Basename returns the url without its query string, for compact
// logging.
func Basename(rawUrl string) string {
	base, _, _ := strings.Cut(rawUrl, "?")
	return base
}

func lastSegment(collection string) string {
	collection = Basename(collection)
	if i := strings.LastIndexByte(collection, '/'); i >= 0 {
		return collection[i+1:]
	}
	return collection
}
