package user

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service *UserService
}

func NewUserHandler(service *UserService) *UserHandler {
	return &UserHandler{
		Service: service,
	}
}

func getCookieSettings() (domain string, path string, secure bool, httpOnly bool, sameSite http.SameSite, accessMaxAge int, refreshMaxAge int) {
	domain = os.Getenv("COOKIE_DOMAIN")

	path = os.Getenv("COOKIE_PATH")
	if path == "" {
		path = "/"
	}

	secure = util.GetEnvBool("COOKIE_SECURE", false)
	httpOnly = util.GetEnvBool("COOKIE_HTTP_ONLY", true)
	sameSite = util.GetSameSiteMode(os.Getenv("COOKIE_SAME_SITE"))
	accessMaxAge = util.GetEnvInt("COOKIE_ACCESS_TOKEN_MAX_AGE", 3600)
	refreshMaxAge = util.GetEnvInt("COOKIE_REFRESH_TOKEN_MAX_AGE", 604800)

	return
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	createdUser, err := h.Service.CreateUser(&req)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.CreatedResponse(c, "User created successfully", createdUser)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.GetUsers()
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, "Users fetched successfully", users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.Service.GetUserByID(id)
	if err != nil {
		util.ErrorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	util.SuccessResponse(c, "User fetched successfully", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	updatedUser, err := h.Service.UpdateUser(id, &req)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, "User updated successfully", updatedUser)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	err = h.Service.DeleteUser(id)
	if err != nil {
		if errors.Is(err, ErrUserHasActiveDocuments) {
			util.ErrorResponse(c, http.StatusConflict, "User has active documents assigned; reassign or archive them first")
			return
		}
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, "User deleted successfully", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	response, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		util.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	domain, path, secure, httpOnly, sameSite, accessMaxAge, refreshMaxAge := getCookieSettings()

	c.SetSameSite(sameSite)
	c.SetCookie(
		"access_token",
		response.AccessToken,
		accessMaxAge,
		path,
		domain,
		secure,
		httpOnly,
	)

	c.SetSameSite(sameSite)
	c.SetCookie(
		"refresh_token",
		response.RefreshToken,
		refreshMaxAge,
		path,
		domain,
		secure,
		httpOnly,
	)

	util.SuccessResponse(c, "Login successful", response)
}

func (h *UserHandler) Logout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		util.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	err := h.Service.Logout(userID.(int64))
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	domain, path, secure, httpOnly, sameSite, _, _ := getCookieSettings()

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", "", -1, path, domain, secure, httpOnly)

	c.SetSameSite(sameSite)
	c.SetCookie("refresh_token", "", -1, path, domain, secure, httpOnly)

	util.SuccessResponse(c, "Logout successful", nil)
}

func (h *UserHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		util.ErrorResponse(c, http.StatusBadRequest, "Refresh token not found")
		return
	}

	accessToken, err := h.Service.RefreshAccessToken(refreshToken)
	if err != nil {
		util.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	domain, path, secure, httpOnly, sameSite, accessMaxAge, _ := getCookieSettings()

	c.SetSameSite(sameSite)
	c.SetCookie(
		"access_token",
		accessToken,
		accessMaxAge,
		path,
		domain,
		secure,
		httpOnly,
	)

	util.SuccessResponse(c, "Token refreshed successfully", gin.H{
		"access_token": accessToken,
	})
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		util.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.Service.GetUserByID(userID.(int64))
	if err != nil {
		util.ErrorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	util.SuccessResponse(c, "Current user fetched successfully", user)
}
