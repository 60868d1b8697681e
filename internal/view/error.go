package view

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// NotFoundPage is served for every 404, whether the resource is truly
// absent or merely belongs to someone else.
func NotFoundPage(username string) g.Node {
	return layout("Страница не найдена", username,
		H1(g.Text("404")),
		P(g.Text("Страница не найдена.")),
		P(A(Href("/"), g.Text("На главную"))),
	)
}

// ErrorPage is the generic failure page.
func ErrorPage(username string) g.Node {
	return layout("Ошибка", username,
		H1(g.Text("Что-то пошло не так")),
		P(g.Text("Попробуйте ещё раз позже.")),
		P(A(Href("/"), g.Text("На главную"))),
	)
}
