package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/session"
)

const githubUserInfoURL = "https://api.github.com/user"

type AuthHandler struct {
	users        contract.IUserRepository
	codec        *session.Codec
	log          logger.Logger
	baseURL      string
	clientID     string
	clientSecret string
}

func NewAuthHandler(users contract.IUserRepository, codec *session.Codec, log logger.Logger, baseURL, clientID, clientSecret string) *AuthHandler {
	return &AuthHandler{
		users:        users,
		codec:        codec,
		log:          log,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

type githubUserInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func (h *AuthHandler) githubOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.clientID,
		ClientSecret: h.clientSecret,
		RedirectURL:  h.baseURL + "/auth/github/callback",
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     github.Endpoint,
	}
}

// HandleGithubLogin starts the OAuth dance. The random state lands in a
// short-lived cookie and must round-trip through GitHub unchanged.
func (h *AuthHandler) HandleGithubLogin(ctx *gin.Context) {
	oauthState := uuid.NewString()
	ctx.SetCookie("oauthState", oauthState, 300, "/", "", false, true)

	url := h.githubOauthConfig().AuthCodeURL(oauthState)
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// HandleGithubCallback finishes the OAuth dance: it exchanges the code,
// fetches the GitHub profile, finds or creates the matching user and issues
// the session cookie.
func (h *AuthHandler) HandleGithubCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie("oauthState")
	if err != nil || state == "" || state != cookieState {
		ctx.String(http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	ctx.SetCookie("oauthState", "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ctx.String(http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()

	token, err := h.githubOauthConfig().Exchange(requestCtx, code)
	if err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("failed to exchange authorization code for token: %v", err))
		return
	}

	client := h.githubOauthConfig().Client(requestCtx, token)
	resp, err := client.Get(githubUserInfoURL)
	if err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var info githubUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("failed to decode user info: %v", err))
		return
	}

	user, err := h.findOrCreateUser(ctx, &info)
	if err != nil {
		h.log.Errorf("finding or creating user for github id %d: %v", info.ID, err)
		ctx.String(http.StatusInternalServerError, "failed to log in")
		return
	}

	sessionToken, err := h.codec.Issue(user.ID.Hex())
	if err != nil {
		h.log.Errorf("issuing session for user %s: %v", user.ID.Hex(), err)
		ctx.String(http.StatusInternalServerError, "failed to log in")
		return
	}

	ctx.SetCookie(session.CookieName, sessionToken, h.codec.TTLSeconds(), "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, "/")
}

// Logout clears the session cookie. Nothing is kept server side, so expiring
// the cookie is the whole logout.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, "/")
}

func (h *AuthHandler) findOrCreateUser(ctx *gin.Context, info *githubUserInfo) (*entity.User, error) {
	requestCtx := ctx.Request.Context()
	githubID := strconv.FormatInt(info.ID, 10)

	user, err := h.users.GetUserByGithubID(requestCtx, githubID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	name := info.Name
	if name == "" {
		name = info.Login
	}
	newUser := &entity.User{
		Name:           name,
		Email:          info.Email,
		Role:           entity.DefaultRole(),
		GithubID:       githubID,
		AvatarURL:      info.AvatarURL,
		RegisteredDate: time.Now(),
	}
	id, err := h.users.CreateUser(requestCtx, newUser)
	if err != nil {
		return nil, err
	}
	return h.users.GetUserByID(requestCtx, id)
}
