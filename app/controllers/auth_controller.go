package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/newsnotes-app/newsnotes/app/models"
	"github.com/newsnotes-app/newsnotes/internal/pkg/constants"
	"github.com/newsnotes-app/newsnotes/internal/pkg/session"
	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
	"github.com/newsnotes-app/newsnotes/internal/pkg/viewmodel"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		user, err := userRepo.GetByEmail(c.FormValue("email"))
		if err != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect(constants.UserLoginRoute)
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect(constants.UserLoginRoute)
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(constants.UserLoginRoute)
		}

		sess.Set(AUTH_KEY, true)
		sess.Set(USER_ID, user.ID)
		sess.Set(USER_NAME, user.Name)

		err = sess.Save()
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(constants.UserLoginRoute)
		}

		now := time.Now()
		user.LastLoginAt = &now
		userRepo.Update(user)

		fm = fiber.Map{
			"type":    "success",
			"message": "Вы вошли в систему.",
		}

		// Return the user to where they were headed before logging in.
		target := c.FormValue("next")
		if !strings.HasPrefix(target, "/") {
			target = constants.HomeRoute
		}

		return flash.WithSuccess(c, fm).Redirect(target)
	}

	return c.Render("auth/login", fiber.Map{
		"Layout": layout(c, "Войти"),
		"Next":   c.Query("next"),
	}, "layouts/main")
}

// HandleAuthLogout destroys the session and renders the logged-out page.
// The page is public: logging out while anonymous is a no-op.
func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("something went wrong: %s", err))
		}
	}

	c.Locals(FROM_PROTECTED, false)
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{IsLoggedIn: false})

	return c.Render("auth/logged_out", fiber.Map{
		"Layout": viewmodel.Layout{Page: "Вы вышли", Msg: flash.Get(c)},
	}, "layouts/main")
}

func HandleAuthSignup(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		user, err := models.CreateUser(c.FormValue("username"), c.FormValue("email"), c.FormValue("password"))
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect(constants.UserSignupRoute)
		}

		err = userRepo.Create(user)
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect(constants.UserSignupRoute)
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Регистрация прошла успешно! Теперь войдите.",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.UserLoginRoute)
	}

	return c.Render("auth/signup", fiber.Map{
		"Layout": layout(c, "Регистрация"),
	}, "layouts/main")
}
