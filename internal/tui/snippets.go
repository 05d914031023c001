package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/collection"
	"devdash/internal/debounce"
	"devdash/internal/model"
	"devdash/internal/pipeline"
	"devdash/internal/store"
)

var snippetSortKeys = []string{"recent", "copied", "alphabetical"}

type snippetsPanel struct {
	store store.Store
	all   []model.Snippet

	search    textinput.Model
	searching bool
	query     string
	searchDeb *debounce.Debouncer[string]

	language   string
	difficulty string
	sortIdx    int

	pager    pipeline.Pager
	cursor   int
	expanded bool // show the cursor snippet's code inline
}

func newSnippetsPanel(s store.Store, pageSize int, events chan<- tea.Msg) snippetsPanel {
	in := textinput.New()
	in.Placeholder = "Search snippets..."
	in.CharLimit = 100

	p := snippetsPanel{
		store:      s,
		all:        s.Snippets(),
		search:     in,
		language:   pipeline.All,
		difficulty: pipeline.All,
		pager:      pipeline.NewPager(pageSize),
	}
	p.searchDeb = debounce.New(searchSettleQuiet, func(q string) {
		events <- searchSettledMsg{module: model.ModuleSnippets, query: q}
	})
	return p
}

func (p *snippetsPanel) refresh() { p.all = p.store.Snippets() }

func (p *snippetsPanel) editing() bool { return p.searching }

func (p *snippetsPanel) stop() { p.searchDeb.Stop() }

func (p *snippetsPanel) less() func(a, b model.Snippet) bool {
	switch snippetSortKeys[p.sortIdx] {
	case "alphabetical":
		return func(a, b model.Snippet) bool { return pipeline.TitleLess(a.Title, b.Title) }
	case "copied":
		return func(a, b model.Snippet) bool { return a.CopiedCount > b.CopiedCount }
	default:
		return func(a, b model.Snippet) bool { return a.CreatedAt > b.CreatedAt }
	}
}

func (p *snippetsPanel) visible() ([]model.Snippet, int) {
	out := pipeline.Search(p.all, p.query, func(sn model.Snippet) []string {
		return append([]string{sn.Title, sn.Code, sn.Description}, sn.Tags...)
	})
	out = pipeline.Filter(out, p.language, func(sn model.Snippet) string { return sn.Language })
	out = pipeline.Filter(out, p.difficulty, func(sn model.Snippet) string { return sn.Difficulty })
	out = pipeline.SortBy(out, p.less())

	p.pager.Sync(p.query, p.language, p.difficulty, snippetSortKeys[p.sortIdx])
	total := len(out)
	return pipeline.Slice(out, &p.pager), total
}

func (p *snippetsPanel) cycleLanguage() {
	langs := pipeline.Categories(p.all, func(sn model.Snippet) string { return sn.Language })
	for i, l := range langs {
		if l == p.language {
			p.language = langs[(i+1)%len(langs)]
			return
		}
	}
	p.language = pipeline.All
}

func (p *snippetsPanel) cycleDifficulty() {
	diffs := pipeline.Categories(p.all, func(sn model.Snippet) string { return sn.Difficulty })
	for i, d := range diffs {
		if d == p.difficulty {
			p.difficulty = diffs[(i+1)%len(diffs)]
			return
		}
	}
	p.difficulty = pipeline.All
}

func (p *snippetsPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	if p.searching {
		switch msg.String() {
		case "enter", "esc":
			p.searching = false
			p.search.Blur()
			if msg.String() == "esc" {
				p.search.SetValue("")
				p.query = ""
			}
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.searchDeb.Set(p.search.Value())
		return cmd
	}

	page, total := p.visible()
	switch msg.String() {
	case "/":
		p.searching = true
		return p.search.Focus()
	case "c":
		p.cycleLanguage()
		p.cursor = 0
	case "D":
		p.cycleDifficulty()
		p.cursor = 0
	case "s":
		p.sortIdx = (p.sortIdx + 1) % len(snippetSortKeys)
		p.cursor = 0
	case "j", "down":
		if p.cursor < len(page)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "l", "right":
		p.pager.SetPage(p.pager.Page+1, total)
		p.cursor = 0
	case "h", "left":
		p.pager.SetPage(p.pager.Page-1, total)
		p.cursor = 0
	case "v":
		p.expanded = !p.expanded
	case "enter", "y":
		if p.cursor < len(page) {
			sn := page[p.cursor]
			app.status = copyText(sn.Code, "Snippet copied to clipboard")
			if all, ok := collection.Patch(p.all, sn.ID, func(x model.Snippet) model.Snippet {
				x.CopiedCount++
				return x
			}); ok {
				_ = p.store.SaveSnippets(all)
				p.refresh()
			}
		}
	case "d":
		if p.cursor < len(page) {
			sn := page[p.cursor]
			app.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete snippet %q?", sn.Title),
				apply: func(m *appModel) {
					_ = m.snippets.store.SaveSnippets(collection.Delete(m.snippets.all, sn.ID))
					m.snippets.refresh()
					m.snippets.cursor = 0
				},
			}
		}
	}
	return nil
}

func (p *snippetsPanel) view(width int, focused bool, now time.Time) string {
	page, total := p.visible()

	var b strings.Builder
	if p.searching || p.search.Value() != "" {
		b.WriteString(p.search.View())
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render(
		p.language + " · " + p.difficulty + " · " + snippetSortKeys[p.sortIdx] + fmt.Sprintf(" · %d snippets", total)))
	b.WriteString("\n")

	if len(page) == 0 {
		b.WriteString(styleMuted().Render("No snippets match."))
		b.WriteString("\n")
	}
	for i, sn := range page {
		row := sn.Title +
			styleMuted().Render(fmt.Sprintf("  [%s] copied %d×  %s", sn.Language, sn.CopiedCount, formatRelativeTime(sn.CreatedAt, now)))
		b.WriteString(cursorLine(row, focused && i == p.cursor && !p.searching))
		b.WriteString("\n")
		if p.expanded && focused && i == p.cursor {
			code := "```" + sn.Language + "\n" + sn.Code + "\n```"
			b.WriteString(renderMarkdown(code, width-4))
			b.WriteString("\n")
		}
	}

	if pages := renderPageControls(p.pager.Page, p.pager.TotalPages(total)); pages != "" {
		b.WriteString(pages)
		b.WriteString("\n")
	}
	if focused && !p.searching {
		b.WriteString(styleMuted().Render("/: search   c: language   D: difficulty   s: sort   v: code   enter: copy   d: delete"))
	}
	return b.String()
}
