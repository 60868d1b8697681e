package view

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/model"
)

// NotesLandingPage is the entry point of the private area.
func NotesLandingPage(username string) g.Node {
	return layout("Заметки", username,
		H1(g.Text("Заметки")),
		P(g.Text("Личные заметки. Их видите только вы.")),
		Ul(
			Li(A(Href("/notes/list"), g.Text("Список заметок"))),
			Li(A(Href("/notes/add"), g.Text("Добавить заметку"))),
		),
	)
}

// NotesListPage shows the actor's own notes and nothing else.
func NotesListPage(username string, notes []model.Note) g.Node {
	return layout("Список заметок", username,
		H1(g.Text("Список заметок")),
		g.If(len(notes) == 0, P(g.Text("У вас пока нет заметок."))),
		g.If(len(notes) > 0,
			Ul(g.Group(g.Map(notes, func(n model.Note) g.Node {
				return Li(A(Href("/notes/"+n.Slug), g.Text(n.Title)))
			}))),
		),
		P(A(Href("/notes/add"), g.Text("Добавить заметку"))),
	)
}

// NoteFormPage renders both the add and the edit form; action decides
// which route the submission hits.
func NoteFormPage(username, title, action string, f *form.NoteForm, errs map[string]string) g.Node {
	var titleVal, textVal, slugVal string
	if f != nil {
		titleVal, textVal, slugVal = f.Title, f.Text, f.Slug
	}
	return layout(title, username,
		H1(g.Text(title)),
		FormEl(Action(action), Method("post"),
			Label(For("title"), g.Text("Заголовок")),
			Input(Type("text"), ID("title"), Name("title"), Value(titleVal)),
			fieldError(errs, "title"),

			Label(For("text"), g.Text("Текст")),
			Textarea(ID("text"), Name("text"), g.Text(textVal)),
			fieldError(errs, "text"),

			Label(For("slug"), g.Text("Slug")),
			Input(Type("text"), ID("slug"), Name("slug"), Value(slugVal)),
			P(Em(g.Text("Оставьте пустым, чтобы получить slug из заголовка."))),
			fieldError(errs, "slug"),

			fieldError(errs, ""),
			submitButton("Сохранить"),
		),
	)
}

// NoteDetailPage shows one note to its author.
func NoteDetailPage(username string, n *model.Note) g.Node {
	return layout(n.Title, username,
		H1(g.Text(n.Title)),
		P(Em(g.Text("slug: "+n.Slug))),
		P(g.Text(n.Text)),
		P(
			A(Href("/notes/"+n.Slug+"/edit"), g.Text("Редактировать")),
			g.Text(" "),
			A(Href("/notes/"+n.Slug+"/delete"), g.Text("Удалить")),
		),
		P(A(Href("/notes/list"), g.Text("К списку заметок"))),
	)
}

// NoteDeletePage asks for confirmation before the POST.
func NoteDeletePage(username string, n *model.Note) g.Node {
	return layout("Удалить заметку", username,
		H1(g.Text("Удалить заметку?")),
		P(Strong(g.Text(n.Title))),
		FormEl(Action("/notes/"+n.Slug+"/delete"), Method("post"),
			submitButton("Удалить"),
		),
	)
}

// NoteSuccessPage is the landing target after a note is created,
// edited or deleted.
func NoteSuccessPage(username string) g.Node {
	return layout("Готово", username,
		H1(g.Text("Успешно!")),
		P(g.Text("Изменения сохранены.")),
		P(A(Href("/notes/list"), g.Text("К списку заметок"))),
	)
}
