package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/newsnotes-app/newsnotes/app/models"
	"github.com/newsnotes-app/newsnotes/internal/pkg/application"
	"github.com/newsnotes-app/newsnotes/internal/pkg/database"
)

const testPassword = "secret123"

var testDBSeq int64

// newTestApp boots the full application over a fresh named in-memory
// database. The shared cache keeps the database alive across the pool's
// connections; the counter keeps tests from seeing each other's data.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.News{}, &models.Comment{}, &models.Note{})
	require.NoError(t, err)

	database.DB = db

	return application.New(), db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user, err := models.CreateUser(name, name+"@example.com", testPassword)
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)

	return user
}

func createNews(t *testing.T, db *gorm.DB, title string, date time.Time) *models.News {
	t.Helper()

	news := &models.News{
		Title: title,
		Text:  "Просто текст.",
		Date:  date,
	}
	require.NoError(t, db.Create(news).Error)

	return news
}

func createComment(t *testing.T, db *gorm.DB, news *models.News, author *models.User, text string, createdAt time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		NewsID:    news.ID,
		UserID:    author.ID,
		Text:      text,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(comment).Error)

	return comment
}

func createNote(t *testing.T, db *gorm.DB, author *models.User, title, slug string) *models.Note {
	t.Helper()

	note := &models.Note{
		Title:  title,
		Text:   "Просто текст.",
		Slug:   slug,
		UserID: author.ID,
	}
	require.NoError(t, db.Create(note).Error)

	return note
}

// login performs a real form login and returns the session cookie.
func login(t *testing.T, app *fiber.App, user *models.User) *http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", user.Email)
	form.Set("password", testPassword)

	resp := doForm(t, app, http.MethodPost, "/users/login", form, nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	for _, ck := range resp.Cookies() {
		if ck.Name == "session_id" {
			return ck
		}
	}

	t.Fatal("login response did not set a session cookie")

	return nil
}

func doGet(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func doForm(t *testing.T, app *fiber.App, method, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)

	return n
}
