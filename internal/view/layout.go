// Package view renders the site's HTML. Pages are plain functions
// returning a gomponents node tree; handlers stream them straight to
// the response writer. There are no template files.
package view

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

const siteName = "Новости и заметки"

var baseStyles = `body {
	font-family: sans-serif;
	font-size: 1.05rem;
	max-width: 46em;
	margin: 0 auto;
	padding: 1em;
}
nav a { margin-right: 1em; }
.error { color: #c0392b; }
textarea { width: 100%; min-height: 8em; }
input[type=text], input[type=password] { width: 100%; }
label { display: block; margin-top: 0.8em; }
`

// layout wraps page content with the shared chrome. username is empty
// for anonymous visitors, which flips the nav between login links and
// the logout form.
func layout(title, username string, content ...g.Node) g.Node {
	return HTML(
		Lang("ru"),
		Head(
			Meta(Charset("utf-8")),
			Meta(g.Attr("name", "viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
			TitleEl(g.Textf("%s — %s", title, siteName)),
			StyleEl(g.Text(baseStyles)),
		),
		Body(
			Nav(
				A(Href("/"), g.Text("Главная")),
				A(Href("/notes"), g.Text("Заметки")),
				g.If(username == "", g.Group([]g.Node{
					A(Href("/auth/login"), g.Text("Войти")),
					A(Href("/auth/signup"), g.Text("Регистрация")),
				})),
				g.If(username != "", g.Group([]g.Node{
					Span(g.Text(username)),
					g.Text(" "),
					A(Href("/auth/logout"), g.Text("Выйти")),
				})),
			),
			Hr(),
			g.Group(content),
		),
	)
}

// fieldError renders the message attached to one form field, if any.
// General errors travel under the empty field name.
func fieldError(errs map[string]string, field string) g.Node {
	msg, ok := errs[field]
	if !ok {
		return nil
	}
	return P(Class("error"), g.Text(msg))
}

func submitButton(label string) g.Node {
	return Button(Type("submit"), g.Text(label))
}
