package view

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/model"
)

const dateLayout = "02.01.2006"

// HomePage lists the freshest news. The cap is applied by the service;
// the page renders whatever it is handed.
func HomePage(username string, items []model.News) g.Node {
	return layout("Новости", username,
		H1(g.Text("Новости")),
		g.If(len(items) == 0, P(g.Text("Пока нет новостей."))),
		g.Group(g.Map(items, func(n model.News) g.Node {
			return Article(
				H2(A(Href("/news/"+n.ID), g.Text(n.Title))),
				P(Em(g.Text(n.Date.Format(dateLayout)))),
				P(g.Text(snippet(n.Text))),
			)
		})),
	)
}

// NewsDetailPage shows one news item with its comments in order of
// appearance. The comment form is rendered only for logged-in readers;
// everyone else gets a login hint instead.
func NewsDetailPage(username string, news *model.News, comments []model.Comment, authors map[string]string, f *form.CommentForm, errs map[string]string) g.Node {
	return layout(news.Title, username,
		H1(g.Text(news.Title)),
		P(Em(g.Text(news.Date.Format(dateLayout)))),
		P(g.Text(news.Text)),

		H2(ID("comments"), g.Textf("Комментарии (%d)", len(comments))),
		g.Group(g.Map(comments, func(c model.Comment) g.Node {
			return commentBlock(username, c, authors[c.AuthorID])
		})),

		g.If(username == "",
			P(
				A(Href("/auth/login"), g.Text("Войдите")),
				g.Text(", чтобы оставить комментарий."),
			),
		),
		g.If(username != "", commentForm("/news/"+news.ID+"/comments", "Отправить", f, errs)),
	)
}

func commentBlock(username string, c model.Comment, author string) g.Node {
	return Div(
		P(
			Strong(g.Text(author)),
			g.Text(" "),
			Em(g.Text(c.Created.Format(dateLayout))),
		),
		P(g.Text(c.Text)),
		g.If(author == username && username != "",
			P(
				A(Href("/comments/"+c.ID+"/edit"), g.Text("Редактировать")),
				g.Text(" "),
				A(Href("/comments/"+c.ID+"/delete"), g.Text("Удалить")),
			),
		),
	)
}

// CommentEditPage re-uses the comment form against the edit route.
func CommentEditPage(username string, c *model.Comment, f *form.CommentForm, errs map[string]string) g.Node {
	return layout("Редактировать комментарий", username,
		H1(g.Text("Редактировать комментарий")),
		commentForm("/comments/"+c.ID+"/edit", "Сохранить", f, errs),
	)
}

// CommentDeletePage asks for confirmation; the destructive request is
// the POST, never the GET.
func CommentDeletePage(username string, c *model.Comment) g.Node {
	return layout("Удалить комментарий", username,
		H1(g.Text("Удалить комментарий?")),
		P(g.Text(c.Text)),
		FormEl(Action("/comments/"+c.ID+"/delete"), Method("post"),
			submitButton("Удалить"),
		),
	)
}

func commentForm(action, label string, f *form.CommentForm, errs map[string]string) g.Node {
	text := ""
	if f != nil {
		text = f.Text
	}
	return FormEl(Action(action), Method("post"),
		Label(For("text"), g.Text("Текст комментария")),
		Textarea(ID("text"), Name("text"), g.Text(text)),
		fieldError(errs, "text"),
		fieldError(errs, ""),
		submitButton(label),
	)
}

func snippet(text string) string {
	const max = 200
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return fmt.Sprintf("%s…", string(runes[:max]))
}
