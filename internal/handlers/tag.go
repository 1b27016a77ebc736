package handlers

import (
	"net/http"

	"jokehub/internal/db"
	"jokehub/internal/models"

	"github.com/gin-gonic/gin"
)

type TagHandler struct{}

func NewTagHandler() *TagHandler {
	return &TagHandler{}
}

func (h *TagHandler) List(c *gin.Context) {
	var tags []models.Tag
	db.DB.Order("name ASC").Find(&tags)

	fillTagJokeCounts(tags)

	Render(c, http.StatusOK, "tag/list.html", gin.H{
		"Title": "Tags",
		"Tags":  tags,
	})
}

// fillTagJokeCounts 批量填充标签下的笑话数量
func fillTagJokeCounts(tags []models.Tag) {
	if len(tags) == 0 {
		return
	}

	type countResult struct {
		TagID uint
		Count int
	}
	var results []countResult
	db.DB.Table("joke_tags").
		Select("tag_id, COUNT(*) as count").
		Group("tag_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.TagID] = r.Count
	}

	for i := range tags {
		tags[i].JokeCount = countMap[tags[i].ID]
	}
}
