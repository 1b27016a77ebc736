package services

import (
	"fmt"
	"math"

	"jokehub/internal/models"

	"gorm.io/gorm"
)

// PerPage is the fixed joke listing page size.
const PerPage = 10

const defaultOrderKey = "updated"

// orderFields maps public sort keys to storage field paths. Columns are fully
// qualified since category/creator ordering pulls in joined tables.
var orderFields = map[string]string{
	"joke":     "jokes.question",
	"category": "categories.name",
	"creator":  "users.username",
	"created":  "jokes.created_at",
	"updated":  "jokes.updated_at",
}

// orderKeys is the display order for the sort-toggle controls.
var orderKeys = []string{"joke", "category", "creator", "created", "updated"}

func init() {
	for _, key := range orderKeys {
		if _, ok := orderFields[key]; !ok {
			panic(fmt.Sprintf("listing: sort key %q has no field mapping", key))
		}
	}
	if len(orderKeys) != len(orderFields) {
		panic("listing: orderKeys and orderFields out of sync")
	}
	if _, ok := orderFields[defaultOrderKey]; !ok {
		panic(fmt.Sprintf("listing: default sort key %q has no field mapping", defaultOrderKey))
	}
}

// ListParams carries the query string parameters and path-scoped filters of a
// joke listing request. All filters combine with AND.
type ListParams struct {
	Query        string // free text, matches question OR answer
	CategorySlug string
	TagSlug      string
	Username     string
	Order        string
	Direction    string
	Page         int
}

type ListResult struct {
	Jokes      []models.Joke
	Total      int64
	Page       int
	TotalPages int
	Order      string
	Direction  string
}

// OrderKeys returns the public sort keys in display order.
func OrderKeys() []string {
	keys := make([]string, len(orderKeys))
	copy(keys, orderKeys)
	return keys
}

// ResolveOrder normalizes a requested sort key and direction. Unknown keys
// fall back to the default; any direction other than "asc" means "desc".
func ResolveOrder(order, direction string) (string, string) {
	if _, ok := orderFields[order]; !ok {
		order = defaultOrderKey
	}
	if direction != "asc" {
		direction = "desc"
	}
	return order, direction
}

// TotalPages returns the page count for a result set, never less than 1.
func TotalPages(total int64) int {
	pages := int(math.Ceil(float64(total) / float64(PerPage)))
	if pages == 0 {
		pages = 1
	}
	return pages
}

// ListJokes builds and runs the filtered, annotated, ordered, paginated joke
// query. Read-only; an empty page is a normal outcome.
func ListJokes(dbh *gorm.DB, p ListParams) (*ListResult, error) {
	order, direction := ResolveOrder(p.Order, p.Direction)

	page := p.Page
	if page < 1 {
		page = 1
	}

	query := dbh.Model(&models.Joke{}).
		Joins("JOIN categories ON categories.id = jokes.category_id").
		Joins("JOIN users ON users.id = jokes.user_id")

	if p.Query != "" {
		pattern := "%" + p.Query + "%"
		query = query.Where("jokes.question ILIKE ? OR jokes.answer ILIKE ?", pattern, pattern)
	}
	if p.CategorySlug != "" {
		query = query.Where("categories.slug = ?", p.CategorySlug)
	}
	if p.TagSlug != "" {
		query = query.
			Joins("JOIN joke_tags ON joke_tags.joke_id = jokes.id").
			Joins("JOIN tags ON tags.id = joke_tags.tag_id").
			Where("tags.slug = ?", p.TagSlug)
	}
	if p.Username != "" {
		query = query.Where("users.username = ?", p.Username)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	// rating_avg stays NULL for jokes without votes; the cast keeps the
	// average a float instead of a numeric.
	var jokes []models.Joke
	err := query.
		Select("jokes.*," +
			" (SELECT CAST(AVG(v.value) AS double precision) FROM joke_votes v WHERE v.joke_id = jokes.id) AS rating_avg," +
			" (SELECT COUNT(*) FROM joke_votes v WHERE v.joke_id = jokes.id) AS num_votes").
		Preload("Category").
		Order(fmt.Sprintf("%s %s, jokes.id asc", orderFields[order], direction)).
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&jokes).Error
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Jokes:      jokes,
		Total:      total,
		Page:       page,
		TotalPages: TotalPages(total),
		Order:      order,
		Direction:  direction,
	}, nil
}
