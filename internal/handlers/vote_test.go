package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jokehub/internal/middleware"
	"jokehub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupVoteRouter wires the vote route with an optional fake session user.
// The handler must decide anonymous / invalid-value requests before touching
// the store, so these tests run without a database.
func setupVoteRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.CheckUserKey, user)
		})
	}
	r.POST("/jokes/joke/:slug/vote", NewVoteHandler().Vote)
	return r
}

func postVote(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/jokes/joke/why-did-the-chicken/vote", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVoteAnonymous(t *testing.T) {
	r := setupVoteRouter(nil)

	w := postVote(t, r, voteRequest{Vote: 1, Likes: 3, Dislikes: 2})
	require.Equal(t, http.StatusOK, w.Code)

	var resp voteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgLoginToVote, resp.Msg)
	assert.EqualValues(t, 3, resp.Likes)
	assert.EqualValues(t, 2, resp.Dislikes)
}

func TestVoteAnonymousEchoesAnyCounters(t *testing.T) {
	r := setupVoteRouter(nil)

	w := postVote(t, r, voteRequest{Vote: -1, Likes: 999, Dislikes: 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp voteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgLoginToVote, resp.Msg)
	assert.EqualValues(t, 999, resp.Likes)
	assert.EqualValues(t, 0, resp.Dislikes)
}

func TestVoteRejectsOutOfDomainValues(t *testing.T) {
	r := setupVoteRouter(&models.User{ID: 7, Username: "pat"})

	for _, vote := range []int{0, 2, -2, 42} {
		w := postVote(t, r, voteRequest{Vote: vote, Likes: 1, Dislikes: 1})
		assert.Equal(t, http.StatusBadRequest, w.Code, "vote=%d", vote)
	}
}

func TestVoteRejectsMalformedBody(t *testing.T) {
	r := setupVoteRouter(&models.User{ID: 7, Username: "pat"})

	req := httptest.NewRequest(http.MethodPost, "/jokes/joke/some-joke/vote", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteMessages(t *testing.T) {
	assert.Equal(t, "Yeah, good one, right?", firstMessage(1))
	assert.Equal(t, "Sorry you didn't like the joke.", firstMessage(-1))
	assert.Equal(t, "Grown on you, has it? OK. Noted.", flipMessage(1))
	assert.Equal(t, "Don't like it after all, huh? OK. Noted.", flipMessage(-1))
	assert.Equal(t, "Right. You told us already. Geez.", msgAlreadyVoted)
	assert.Equal(t, "Sorry, you have to be logged in to vote.", msgLoginToVote)
}
