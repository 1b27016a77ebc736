package handlers

import (
	"net/http"

	"jokehub/internal/db"
	"jokehub/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	db.DB.Order("name ASC").Find(&categories)

	fillCategoryJokeCounts(categories)

	Render(c, http.StatusOK, "category/list.html", gin.H{
		"Title":      "Categories",
		"Categories": categories,
	})
}

// fillCategoryJokeCounts 批量填充分类下的笑话数量
func fillCategoryJokeCounts(categories []models.Category) {
	if len(categories) == 0 {
		return
	}

	type countResult struct {
		CategoryID uint
		Count      int
	}
	var results []countResult
	db.DB.Model(&models.Joke{}).
		Select("category_id, COUNT(*) as count").
		Group("category_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.CategoryID] = r.Count
	}

	for i := range categories {
		categories[i].JokeCount = countMap[categories[i].ID]
	}
}
