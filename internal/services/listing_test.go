package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		name          string
		order         string
		direction     string
		wantOrder     string
		wantDirection string
	}{
		{"known key passes through", "joke", "asc", "joke", "asc"},
		{"category key", "category", "desc", "category", "desc"},
		{"creator key", "creator", "asc", "creator", "asc"},
		{"created key", "created", "desc", "created", "desc"},
		{"updated key", "updated", "asc", "updated", "asc"},
		{"unknown key falls back to updated", "banana", "asc", "updated", "asc"},
		{"empty key falls back to updated", "", "", "updated", "desc"},
		{"weird direction means desc", "joke", "sideways", "joke", "desc"},
		{"missing direction means desc", "joke", "", "joke", "desc"},
		{"uppercase ASC is not asc", "joke", "ASC", "joke", "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, direction := ResolveOrder(tt.order, tt.direction)
			assert.Equal(t, tt.wantOrder, order)
			assert.Equal(t, tt.wantDirection, direction)
		})
	}
}

func TestUnknownOrderMatchesDefault(t *testing.T) {
	gotOrder, gotDirection := ResolveOrder("nonsense", "")
	defOrder, defDirection := ResolveOrder("updated", "")
	assert.Equal(t, defOrder, gotOrder)
	assert.Equal(t, defDirection, gotDirection)
}

func TestOrderKeys(t *testing.T) {
	keys := OrderKeys()
	assert.Equal(t, []string{"joke", "category", "creator", "created", "updated"}, keys)

	// Callers get a copy, mutating it must not poison the sort controls.
	keys[0] = "mutated"
	assert.Equal(t, "joke", OrderKeys()[0])
}

func TestEveryOrderKeyResolves(t *testing.T) {
	for _, key := range OrderKeys() {
		order, _ := ResolveOrder(key, "asc")
		assert.Equal(t, key, order)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
		{31, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total), "total=%d", tt.total)
	}
}
