package view

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/Apollo297/newsnote/internal/form"
)

// LoginPage renders the login form. next is carried in a hidden field
// so a redirect to login survives the round trip back to the page the
// visitor wanted.
func LoginPage(f *form.LoginForm, next string, errs map[string]string) g.Node {
	username := ""
	if f != nil {
		username = f.Username
	}
	return layout("Войти", "",
		H1(g.Text("Войти")),
		FormEl(Action("/auth/login"), Method("post"),
			g.If(next != "", Input(Type("hidden"), Name("next"), Value(next))),

			Label(For("username"), g.Text("Имя пользователя")),
			Input(Type("text"), ID("username"), Name("username"), Value(username)),
			fieldError(errs, "username"),

			Label(For("password"), g.Text("Пароль")),
			Input(Type("password"), ID("password"), Name("password")),
			fieldError(errs, "password"),

			fieldError(errs, ""),
			submitButton("Войти"),
		),
		P(
			g.Text("Нет аккаунта? "),
			A(Href("/auth/signup"), g.Text("Зарегистрируйтесь")),
		),
	)
}

// SignupPage renders registration.
func SignupPage(f *form.SignupForm, errs map[string]string) g.Node {
	username := ""
	if f != nil {
		username = f.Username
	}
	return layout("Регистрация", "",
		H1(g.Text("Регистрация")),
		FormEl(Action("/auth/signup"), Method("post"),
			Label(For("username"), g.Text("Имя пользователя")),
			Input(Type("text"), ID("username"), Name("username"), Value(username)),
			fieldError(errs, "username"),

			Label(For("password"), g.Text("Пароль")),
			Input(Type("password"), ID("password"), Name("password")),
			fieldError(errs, "password"),

			fieldError(errs, ""),
			submitButton("Зарегистрироваться"),
		),
	)
}

// LogoutPage confirms the session is gone.
func LogoutPage() g.Node {
	return layout("Вы вышли", "",
		H1(g.Text("Вы вышли из аккаунта")),
		P(A(Href("/"), g.Text("На главную"))),
	)
}
