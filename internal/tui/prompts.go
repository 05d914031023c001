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

// searchSettleQuiet gates list re-filtering while the user is still typing.
const searchSettleQuiet = 300 * time.Millisecond

// searchSettledMsg carries a debounced search query back into the event
// loop once typing pauses.
type searchSettledMsg struct {
	module model.ModuleID
	query  string
}

var promptSortKeys = []string{"recent", "usage", "alphabetical"}

type promptsPanel struct {
	store store.Store
	all   []model.Prompt

	search    textinput.Model
	searching bool
	query     string // settled query; lags the input by the quiet period
	searchDeb *debounce.Debouncer[string]

	category string
	favOnly  bool
	sortIdx  int

	pager    pipeline.Pager
	cursor   int
	expanded bool // show the cursor prompt's template inline
}

func newPromptsPanel(s store.Store, pageSize int, events chan<- tea.Msg) promptsPanel {
	in := textinput.New()
	in.Placeholder = "Search prompts..."
	in.CharLimit = 100

	p := promptsPanel{
		store:    s,
		all:      s.Prompts(),
		search:   in,
		category: pipeline.All,
		pager:    pipeline.NewPager(pageSize),
	}
	p.searchDeb = debounce.New(searchSettleQuiet, func(q string) {
		events <- searchSettledMsg{module: model.ModulePrompts, query: q}
	})
	return p
}

func (p *promptsPanel) refresh() { p.all = p.store.Prompts() }

func (p *promptsPanel) editing() bool { return p.searching }

func (p *promptsPanel) stop() { p.searchDeb.Stop() }

func (p *promptsPanel) less() func(a, b model.Prompt) bool {
	switch promptSortKeys[p.sortIdx] {
	case "alphabetical":
		return func(a, b model.Prompt) bool { return pipeline.TitleLess(a.Title, b.Title) }
	case "usage":
		return func(a, b model.Prompt) bool { return a.UsageCount > b.UsageCount }
	default:
		return func(a, b model.Prompt) bool { return a.LastActivity() > b.LastActivity() }
	}
}

// visible runs the full pipeline and returns the current page plus the
// filtered total.
func (p *promptsPanel) visible() ([]model.Prompt, int) {
	out := pipeline.Search(p.all, p.query, func(pr model.Prompt) []string {
		return append([]string{pr.Title, pr.Template}, pr.Tags...)
	})
	out = pipeline.Filter(out, p.category, func(pr model.Prompt) string { return pr.Category })
	out = pipeline.Where(out, p.favOnly, func(pr model.Prompt) bool { return pr.Favorite })
	out = pipeline.SortBy(out, p.less())

	p.pager.Sync(p.query, p.category, fmt.Sprint(p.favOnly), promptSortKeys[p.sortIdx])
	total := len(out)
	return pipeline.Slice(out, &p.pager), total
}

func (p *promptsPanel) cycleCategory() {
	cats := pipeline.Categories(p.all, func(pr model.Prompt) string { return pr.Category })
	for i, c := range cats {
		if c == p.category {
			p.category = cats[(i+1)%len(cats)]
			return
		}
	}
	p.category = pipeline.All
}

func (p *promptsPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
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
		p.cycleCategory()
		p.cursor = 0
	case "f":
		p.favOnly = !p.favOnly
		p.cursor = 0
	case "s":
		p.sortIdx = (p.sortIdx + 1) % len(promptSortKeys)
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
			pr := page[p.cursor]
			app.status = copyText(pr.Template, "Prompt copied to clipboard")
			if all, ok := collection.Patch(p.all, pr.ID, func(x model.Prompt) model.Prompt {
				x.UsageCount++
				x.LastUsed = collection.Now()
				return x
			}); ok {
				_ = p.store.SavePrompts(all)
				p.refresh()
			}
		}
	case "*":
		if p.cursor < len(page) {
			if all, ok := collection.Patch(p.all, page[p.cursor].ID, func(x model.Prompt) model.Prompt {
				x.Favorite = !x.Favorite
				return x
			}); ok {
				_ = p.store.SavePrompts(all)
				p.refresh()
			}
		}
	case "d":
		if p.cursor < len(page) {
			pr := page[p.cursor]
			app.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete prompt %q?", pr.Title),
				apply: func(m *appModel) {
					_ = m.prompts.store.SavePrompts(collection.Delete(m.prompts.all, pr.ID))
					m.prompts.refresh()
					m.prompts.cursor = 0
				},
			}
		}
	}
	return nil
}

func (p *promptsPanel) view(width int, focused bool, now time.Time) string {
	page, total := p.visible()

	var b strings.Builder
	if p.searching || p.search.Value() != "" {
		b.WriteString(p.search.View())
		b.WriteString("\n")
	}

	filters := []string{p.category, promptSortKeys[p.sortIdx]}
	if p.favOnly {
		filters = append(filters, "favorites")
	}
	b.WriteString(styleMuted().Render(strings.Join(filters, " · ") + fmt.Sprintf(" · %d prompts", total)))
	b.WriteString("\n")

	if len(page) == 0 {
		b.WriteString(styleMuted().Render("No prompts match."))
		b.WriteString("\n")
	}
	for i, pr := range page {
		star := "  "
		if pr.Favorite {
			star = "★ "
		}
		row := star + pr.Title +
			styleMuted().Render(fmt.Sprintf("  [%s] used %d×  %s", pr.Category, pr.UsageCount, formatRelativeTime(pr.CreatedAt, now)))
		b.WriteString(cursorLine(row, focused && i == p.cursor && !p.searching))
		b.WriteString("\n")
		if p.expanded && focused && i == p.cursor {
			b.WriteString(renderMarkdown(pr.Template, width-4))
			b.WriteString("\n")
		}
	}

	if pages := renderPageControls(p.pager.Page, p.pager.TotalPages(total)); pages != "" {
		b.WriteString(pages)
		b.WriteString("\n")
	}
	if focused && !p.searching {
		b.WriteString(styleMuted().Render("/: search   c: category   f: favs   s: sort   v: preview   enter: copy   *: favorite   d: delete"))
	}
	return b.String()
}
