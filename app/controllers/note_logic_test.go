package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsnotes-app/newsnotes/app/forms"
	"github.com/newsnotes-app/newsnotes/app/models"
)

func noteForm(title, text, slug string) url.Values {
	form := url.Values{}
	form.Set("title", title)
	form.Set("text", text)
	form.Set("slug", slug)

	return form
}

func TestAnonymousCannotCreateNote(t *testing.T) {
	app, db := newTestApp(t)

	resp := doForm(t, app, http.MethodPost, "/notes/add", noteForm("Заметка", "Текст", ""), nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/login?next=/notes/add", resp.Header.Get("Location"))
	assert.EqualValues(t, 0, countRows(t, db, &models.Note{}))
}

func TestUserCanCreateNote(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/add", noteForm("Новая заметка", "Текст заметки", "novaya"), cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/notes/success", resp.Header.Get("Location"))

	var note models.Note
	require.NoError(t, db.First(&note).Error)
	assert.Equal(t, "Новая заметка", note.Title)
	assert.Equal(t, "Текст заметки", note.Text)
	assert.Equal(t, "novaya", note.Slug)
	assert.Equal(t, user.ID, note.UserID)
}

func TestEmptySlugDerivedFromTitle(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/add", noteForm("Заголовок заметки", "Текст", ""), cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	var note models.Note
	require.NoError(t, db.First(&note).Error)
	assert.Equal(t, "zagolovok-zametki", note.Slug)
}

func TestDuplicateSlugRejected(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	createNote(t, db, user, "Первая", "zanyato")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/add", noteForm("Вторая", "Текст", "zanyato"), cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "zanyato"+forms.SlugWarning)
	assert.EqualValues(t, 1, countRows(t, db, &models.Note{}))
}

func TestDuplicateSlugRejectedAcrossUsers(t *testing.T) {
	app, db := newTestApp(t)
	other := createUser(t, db, "other")
	user := createUser(t, db, "writer")
	createNote(t, db, other, "Чужая", "zanyato")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/add", noteForm("Моя", "Текст", "zanyato"), cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "zanyato"+forms.SlugWarning)
	assert.EqualValues(t, 1, countRows(t, db, &models.Note{}))
}

func TestNoteWithoutTitleRejected(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/add", noteForm("", "Текст", ""), cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Обязательное поле.")
	assert.EqualValues(t, 0, countRows(t, db, &models.Note{}))
}

func TestAuthorCanEditNote(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	note := createNote(t, db, user, "Старый заголовок", "staraya")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/staraya/edit", noteForm("Новый заголовок", "Новый текст", "novaya"), cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/notes/success", resp.Header.Get("Location"))

	var got models.Note
	require.NoError(t, db.First(&got, note.ID).Error)
	assert.Equal(t, "Новый заголовок", got.Title)
	assert.Equal(t, "Новый текст", got.Text)
	assert.Equal(t, "novaya", got.Slug)
}

func TestStrangerCannotEditNote(t *testing.T) {
	app, db := newTestApp(t)
	author := createUser(t, db, "author")
	stranger := createUser(t, db, "stranger")
	note := createNote(t, db, author, "Заметка", "zametka")
	cookie := login(t, app, stranger)

	resp := doForm(t, app, http.MethodPost, "/notes/zametka/edit", noteForm("Чужой заголовок", "Текст", ""), cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var got models.Note
	require.NoError(t, db.First(&got, note.ID).Error)
	assert.Equal(t, "Заметка", got.Title)
}

func TestEditToTakenSlugRejected(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	createNote(t, db, user, "Первая", "pervaya")
	second := createNote(t, db, user, "Вторая", "vtoraya")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/vtoraya/edit", noteForm("Вторая", "Текст", "pervaya"), cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "pervaya"+forms.SlugWarning)

	var got models.Note
	require.NoError(t, db.First(&got, second.ID).Error)
	assert.Equal(t, "vtoraya", got.Slug)
}

func TestEditKeepingOwnSlugAllowed(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	note := createNote(t, db, user, "Заметка", "zametka")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/zametka/edit", noteForm("Заметка дополнена", "Текст", "zametka"), cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	var got models.Note
	require.NoError(t, db.First(&got, note.ID).Error)
	assert.Equal(t, "Заметка дополнена", got.Title)
	assert.Equal(t, "zametka", got.Slug)
}

func TestAuthorCanDeleteNote(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	createNote(t, db, user, "Заметка", "zametka")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/zametka/delete", nil, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/notes/success", resp.Header.Get("Location"))
	assert.EqualValues(t, 0, countRows(t, db, &models.Note{}))
}

func TestStrangerCannotDeleteNote(t *testing.T) {
	app, db := newTestApp(t)
	author := createUser(t, db, "author")
	stranger := createUser(t, db, "stranger")
	createNote(t, db, author, "Заметка", "zametka")
	cookie := login(t, app, stranger)

	resp := doForm(t, app, http.MethodPost, "/notes/zametka/delete", nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.EqualValues(t, 1, countRows(t, db, &models.Note{}))
}

func TestDeletedSlugBecomesAvailable(t *testing.T) {
	app, db := newTestApp(t)
	user := createUser(t, db, "writer")
	createNote(t, db, user, "Заметка", "zametka")
	cookie := login(t, app, user)

	resp := doForm(t, app, http.MethodPost, "/notes/zametka/delete", nil, cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp = doForm(t, app, http.MethodPost, "/notes/add", noteForm("Снова", "Текст", "zametka"), cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.EqualValues(t, 1, countRows(t, db, &models.Note{}))
}
