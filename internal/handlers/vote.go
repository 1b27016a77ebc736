package handlers

import (
	"errors"
	"net/http"

	"jokehub/internal/db"
	"jokehub/internal/middleware"
	"jokehub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Messages returned by the vote endpoint.
const (
	msgLoginToVote      = "Sorry, you have to be logged in to vote."
	msgAlreadyVoted     = "Right. You told us already. Geez."
	msgChangedToLike    = "Grown on you, has it? OK. Noted."
	msgChangedToDislike = "Don't like it after all, huh? OK. Noted."
	msgFirstLike        = "Yeah, good one, right?"
	msgFirstDislike     = "Sorry you didn't like the joke."
)

type voteRequest struct {
	Vote     int `json:"vote"`
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type voteResponse struct {
	Msg      string `json:"msg"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Vote handles the three-way toggle for one user on one joke: create a vote,
// flip an existing one, or reject a duplicate. Counters in the response are
// always recomputed from the vote table, never taken from the request.
func (h *VoteHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		// Not an error: anonymous voters get a polite no and their own
		// counters back, untouched.
		c.JSON(http.StatusOK, voteResponse{
			Msg:      msgLoginToVote,
			Likes:    int64(req.Likes),
			Dislikes: int64(req.Dislikes),
		})
		return
	}
	currentUser := user.(*models.User)

	if req.Vote != 1 && req.Vote != -1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vote must be 1 or -1"})
		return
	}

	slug := c.Param("slug")
	var joke models.Joke
	if err := db.DB.Where("slug = ?", slug).First(&joke).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "joke not found"})
		return
	}

	msg, err := applyVote(currentUser.ID, joke.ID, req.Vote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record vote"})
		return
	}

	likes, dislikes := countVotes(joke.ID)
	c.JSON(http.StatusOK, voteResponse{Msg: msg, Likes: likes, Dislikes: dislikes})
}

// applyVote runs the toggle transition and returns the user-facing message.
func applyVote(userID, jokeID uint, value int) (string, error) {
	var existing models.JokeVote
	err := db.DB.Where("user_id = ? AND joke_id = ?", userID, jokeID).First(&existing).Error
	switch {
	case err == nil:
		if existing.Value == value {
			return msgAlreadyVoted, nil
		}
		existing.Value = value
		if err := db.DB.Save(&existing).Error; err != nil {
			return "", err
		}
		return flipMessage(value), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := models.JokeVote{UserID: userID, JokeID: jokeID, Value: value}
		if err := db.DB.Create(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a double-submit race; the stored vote stands.
				return msgAlreadyVoted, nil
			}
			return "", err
		}
		return firstMessage(value), nil
	default:
		return "", err
	}
}

func firstMessage(value int) string {
	if value == -1 {
		return msgFirstDislike
	}
	return msgFirstLike
}

func flipMessage(value int) string {
	if value == -1 {
		return msgChangedToDislike
	}
	return msgChangedToLike
}

// countVotes recomputes both counters from the vote table.
func countVotes(jokeID uint) (likes, dislikes int64) {
	db.DB.Model(&models.JokeVote{}).Where("joke_id = ? AND value = 1", jokeID).Count(&likes)
	db.DB.Model(&models.JokeVote{}).Where("joke_id = ? AND value = -1", jokeID).Count(&dislikes)
	return
}
