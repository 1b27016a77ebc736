package handlers

import (
	"net/http"

	"jokehub/internal/db"
	"jokehub/internal/middleware"
	"jokehub/internal/models"
	"jokehub/internal/services"
	"jokehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type JokeHandler struct{}

func NewJokeHandler() *JokeHandler {
	return &JokeHandler{}
}

// renderList runs the listing query for the given path scope plus the
// request's q/order/direction/page parameters and renders joke/list.html.
func (h *JokeHandler) renderList(c *gin.Context, params services.ListParams, data gin.H) {
	params.Query = c.Query("q")
	params.Order = c.Query("order")
	params.Direction = c.Query("direction")
	params.Page = 1
	if p := c.Query("page"); p != "" {
		if page := utils.StringToInt(p); page > 0 {
			params.Page = page
		}
	}

	result, err := services.ListJokes(db.DB, params)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load jokes")
		return
	}

	if data == nil {
		data = gin.H{}
	}
	data["Jokes"] = result.Jokes
	data["Query"] = params.Query
	data["Order"] = result.Order
	data["Direction"] = result.Direction
	data["OrderFields"] = services.OrderKeys()
	data["CurrentPage"] = result.Page
	data["TotalPages"] = result.TotalPages
	data["Total"] = result.Total
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Jokes"
	}
	Render(c, http.StatusOK, "joke/list.html", data)
}

func (h *JokeHandler) List(c *gin.Context) {
	h.renderList(c, services.ListParams{}, nil)
}

func (h *JokeHandler) ListByCategory(c *gin.Context) {
	slug := c.Param("slug")

	var category models.Category
	if err := db.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	h.renderList(c, services.ListParams{CategorySlug: slug}, gin.H{
		"Title":    category.Name + " Jokes",
		"Category": category,
	})
}

func (h *JokeHandler) ListByTag(c *gin.Context) {
	slug := c.Param("slug")

	var tag models.Tag
	if err := db.DB.Where("slug = ?", slug).First(&tag).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found")
		return
	}

	h.renderList(c, services.ListParams{TagSlug: slug}, gin.H{
		"Title": "Jokes tagged " + tag.Name,
		"Tag":   tag,
	})
}

func (h *JokeHandler) ListByCreator(c *gin.Context) {
	username := c.Param("username")

	var creator models.User
	if err := db.DB.Where("username = ?", username).First(&creator).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	h.renderList(c, services.ListParams{Username: username}, gin.H{
		"Title":   "Jokes by " + creator.Username,
		"Creator": creator,
	})
}

func (h *JokeHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	var joke models.Joke
	if err := db.DB.Preload("User").Preload("Category").Preload("Tags").
		Where("slug = ?", slug).First(&joke).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Joke not found")
		return
	}

	// Rating is always computed from the vote rows, never stored.
	row := db.DB.Model(&models.JokeVote{}).
		Where("joke_id = ?", joke.ID).
		Select("CAST(AVG(value) AS double precision), COUNT(*)").
		Row()
	row.Scan(&joke.RatingAvg, &joke.NumVotes)

	var likes, dislikes int64
	db.DB.Model(&models.JokeVote{}).Where("joke_id = ? AND value = 1", joke.ID).Count(&likes)
	db.DB.Model(&models.JokeVote{}).Where("joke_id = ? AND value = -1", joke.ID).Count(&dislikes)

	Render(c, http.StatusOK, "joke/detail.html", gin.H{
		"Title":      joke.Question,
		"Joke":       joke,
		"AnswerHTML": utils.EnhanceAnswerHTML(string(utils.RenderMarkdown(joke.Answer))),
		"Likes":      likes,
		"Dislikes":   dislikes,
	})
}

func (h *JokeHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "joke/create.html", h.formData(nil))
}

func (h *JokeHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	question := c.PostForm("question")
	answer := c.PostForm("answer")
	categoryID := utils.StringToInt(c.PostForm("category_id"))

	if question == "" {
		data := h.formData(nil)
		data["Error"] = "Question must not be empty"
		Render(c, http.StatusBadRequest, "joke/create.html", data)
		return
	}
	if categoryID <= 0 {
		data := h.formData(nil)
		data["Error"] = "Pick a category"
		Render(c, http.StatusBadRequest, "joke/create.html", data)
		return
	}

	joke := models.Joke{
		Slug:       h.uniqueSlug(question),
		UserID:     user.ID,
		CategoryID: uint(categoryID),
		Question:   question,
		Answer:     answer,
		Tags:       h.selectedTags(c),
	}

	if err := db.DB.Create(&joke).Error; err != nil {
		data := h.formData(nil)
		data["Error"] = "Could not save the joke"
		Render(c, http.StatusInternalServerError, "joke/create.html", data)
		return
	}

	SetFlash(c, "Joke created.")
	c.Redirect(http.StatusFound, "/jokes/joke/"+joke.Slug)
}

func (h *JokeHandler) ShowEdit(c *gin.Context) {
	joke, ok := h.ownJoke(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, "joke/edit.html", h.formData(joke))
}

func (h *JokeHandler) Update(c *gin.Context) {
	joke, ok := h.ownJoke(c)
	if !ok {
		return
	}

	question := c.PostForm("question")
	answer := c.PostForm("answer")
	categoryID := utils.StringToInt(c.PostForm("category_id"))

	if question == "" {
		data := h.formData(joke)
		data["Error"] = "Question must not be empty"
		Render(c, http.StatusBadRequest, "joke/edit.html", data)
		return
	}

	// Slug stays what it was; links to the joke must not break on edit.
	joke.Question = question
	joke.Answer = answer
	if categoryID > 0 {
		joke.CategoryID = uint(categoryID)
	}

	if err := db.DB.Save(joke).Error; err != nil {
		data := h.formData(joke)
		data["Error"] = "Could not save the joke"
		Render(c, http.StatusInternalServerError, "joke/edit.html", data)
		return
	}
	if err := db.DB.Model(joke).Association("Tags").Replace(h.selectedTags(c)); err != nil {
		data := h.formData(joke)
		data["Error"] = "Could not save the joke"
		Render(c, http.StatusInternalServerError, "joke/edit.html", data)
		return
	}

	SetFlash(c, "Joke updated.")
	c.Redirect(http.StatusFound, "/jokes/joke/"+joke.Slug)
}

func (h *JokeHandler) Delete(c *gin.Context) {
	joke, ok := h.ownJoke(c)
	if !ok {
		return
	}

	db.DB.Where("joke_id = ?", joke.ID).Delete(&models.JokeVote{})
	db.DB.Model(joke).Association("Tags").Clear()
	db.DB.Delete(joke)

	SetFlash(c, "Joke deleted.")
	c.Redirect(http.StatusFound, "/jokes")
}

// ownJoke loads the joke from the path slug and verifies the session user is
// its author. Renders the failure page itself when not.
func (h *JokeHandler) ownJoke(c *gin.Context) (*models.Joke, bool) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	slug := c.Param("slug")

	var joke models.Joke
	if err := db.DB.Preload("Tags").Where("slug = ?", slug).First(&joke).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Joke not found")
		return nil, false
	}

	if joke.UserID != user.ID {
		RenderError(c, http.StatusForbidden, "Only the author can change this joke")
		return nil, false
	}
	return &joke, true
}

// formData loads the category and tag choices for the create/edit forms.
func (h *JokeHandler) formData(joke *models.Joke) gin.H {
	var categories []models.Category
	db.DB.Order("name ASC").Find(&categories)

	var tags []models.Tag
	db.DB.Order("name ASC").Find(&tags)

	data := gin.H{
		"Title":      "Submit a Joke",
		"Categories": categories,
		"AllTags":    tags,
	}
	if joke != nil {
		data["Title"] = "Edit Joke"
		data["Joke"] = joke
		selected := make(map[uint]bool, len(joke.Tags))
		for _, t := range joke.Tags {
			selected[t.ID] = true
		}
		data["SelectedTags"] = selected
	}
	return data
}

// selectedTags resolves the posted tag ids to tag rows.
func (h *JokeHandler) selectedTags(c *gin.Context) []models.Tag {
	ids := make([]int, 0)
	for _, raw := range c.PostFormArray("tags") {
		if id := utils.StringToInt(raw); id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var tags []models.Tag
	db.DB.Where("id IN ?", ids).Find(&tags)
	return tags
}

// uniqueSlug derives a slug from the question and de-collides it with a
// random suffix. The slug never changes after creation.
func (h *JokeHandler) uniqueSlug(question string) string {
	base := utils.Slugify(question)
	if base == "" {
		base = "joke"
	}

	candidate := base
	for {
		var count int64
		db.DB.Model(&models.Joke{}).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = base + "-" + utils.RandStringBytesMaskImpr(4)
	}
}
