package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	ModeNormal = 1
	ModeSearch = 2
)

// entry is a record together with the browser it came from
type entry struct {
	Target models.Target
	models.Record
}

// sourceItem is a row of the browser list; a nil target means all browsers
type sourceItem struct {
	Target *models.Target
	Name   string
	Count  int
}

// App is a read-only terminal viewer for exported bookmarks
type App struct {
	app            *tview.Application
	sourceList     *tview.List
	list           *tview.List
	detail         *tview.TextView
	search         *tview.InputField
	pages          *tview.Pages
	status         *tview.TextView
	mode           uint8
	all            []entry
	items          []entry
	current        *entry
	sources        []sourceItem
	selected       *models.Target
	focusOnSources bool
}

// NewApp creates a viewer over the given sections
func NewApp(sections []models.Section) *App {
	a := &App{
		app:        tview.NewApplication(),
		sourceList: tview.NewList(),
		list:       tview.NewList(),
		detail:     tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		search:     tview.NewInputField().SetLabel("Search: "),
		pages:      tview.NewPages(),
		status:     tview.NewTextView().SetDynamicColors(true),
		mode:       ModeNormal,
	}

	a.sources = append(a.sources, sourceItem{Name: "All Browsers"})
	for i := range sections {
		s := sections[i]
		for _, r := range s.Records {
			a.all = append(a.all, entry{Target: s.Target, Record: r})
		}
		a.sources = append(a.sources, sourceItem{Target: &s.Target, Name: string(s.Target), Count: len(s.Records)})
	}
	a.sources[0].Count = len(a.all)
	a.items = a.all
	return a
}

// Len returns the number of bookmarks loaded into the viewer
func (a *App) Len() int {
	return len(a.all)
}

// Run starts the application
func (a *App) Run() error {
	a.sourceList.SetBorder(true).SetTitle("Browsers")
	a.list.SetBorder(true).SetTitle("Bookmarks")
	a.detail.SetBorder(true).SetTitle("Details")

	cols := tview.NewFlex().
		AddItem(a.sourceList, 0, 1, false).
		AddItem(a.list, 0, 3, true).
		AddItem(a.detail, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages.AddPage("main", main, true, true)

	for _, s := range a.sources {
		a.sourceList.AddItem(fmt.Sprintf("%s (%d)", s.Name, s.Count), "", 0, nil)
	}
	a.fillList()

	a.search.SetChangedFunc(a.onSearchChange)
	a.search.SetDoneFunc(a.onSearchDone)
	a.list.SetChangedFunc(a.onSelect)

	a.app.SetRoot(a.pages, true)
	a.app.SetInputCapture(a.globalInput)
	a.updateStatus()
	a.app.SetFocus(a.list)
	return a.app.Run()
}

func (a *App) updateStatus() {
	keys := "[::b]Tab[::r] switch  [::b]/[::r] search  [::b]Enter[::r] open  [::b]q[::r] quit"
	if a.focusOnSources {
		keys = "[::b]Tab[::r] switch  [::b]Enter[::r] select  [::b]q[::r] quit"
	}
	a.status.SetText(fmt.Sprintf("%s [::b]%d[::r] of %d bookmarks", keys, len(a.items), len(a.all)))
}

// filter keeps the entries of target (all when nil) whose title or URL
// contains text, case-insensitively
func filter(all []entry, target *models.Target, text string) []entry {
	text = strings.ToLower(text)
	var out []entry
	for _, e := range all {
		if target != nil && e.Target != *target {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(e.Title), text) &&
			!strings.Contains(strings.ToLower(e.URL), text) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (a *App) applyFilter() {
	a.items = filter(a.all, a.selected, a.search.GetText())
	a.fillList()
	a.updateStatus()
}

func (a *App) fillList() {
	a.list.Clear()
	for _, e := range a.items {
		a.list.AddItem(e.Title, e.URL, 0, nil)
	}

	if len(a.items) > 0 {
		a.current = &a.items[0]
	} else {
		a.current = nil
	}
	a.showDetails()
}

func (a *App) showDetails() {
	if a.current == nil {
		a.detail.SetText("")
		return
	}
	a.detail.SetText(fmt.Sprintf(
		"[::b]Title:[::-]\n%s\n\n[::b]URL:[::-]\n%s\n\n[::b]Browser:[::-]\n%s",
		tview.Escape(a.current.Title), tview.Escape(a.current.URL), a.current.Target))
}

func (a *App) onSelectSource(index int) {
	if index < 0 || index >= len(a.sources) {
		return
	}
	a.selected = a.sources[index].Target
	a.list.SetTitle(fmt.Sprintf("Bookmarks (%s)", a.sources[index].Name))
	a.applyFilter()
	a.setFocus(false)
}

func (a *App) setFocus(sources bool) {
	a.focusOnSources = sources
	if sources {
		a.app.SetFocus(a.sourceList)
	} else {
		a.app.SetFocus(a.list)
	}
	a.updateStatus()
}

func (a *App) setMode(m uint8) {
	a.mode = m
	switch m {
	case ModeSearch:
		a.app.SetFocus(a.search)
	case ModeNormal:
		a.setFocus(a.focusOnSources)
	}
}

func (a *App) onSearchChange(text string) {
	a.applyFilter()
}

func (a *App) onSearchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		a.setMode(ModeNormal)
	case tcell.KeyEscape:
		a.search.SetText("")
		a.setMode(ModeNormal)
	}
}

func (a *App) onSelect(index int, mainText, secondaryText string, shortcut rune) {
	if index >= 0 && index < len(a.items) {
		a.current = &a.items[index]
		a.showDetails()
	}
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.mode == ModeSearch {
		return event
	}

	switch event.Key() {
	case tcell.KeyTab:
		a.setFocus(!a.focusOnSources)
		return nil
	case tcell.KeyEnter:
		if a.focusOnSources {
			a.onSelectSource(a.sourceList.GetCurrentItem())
		} else if a.current != nil {
			a.open(a.current.URL)
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case '/':
			a.setMode(ModeSearch)
			return nil
		}
	}
	return event
}

// open starts the system browser on url; a failure is shown in the status line
func (a *App) open(url string) {
	if err := openURL(url); err != nil {
		a.status.SetText(fmt.Sprintf("[red]cannot open %s: %v[-]", tview.Escape(url), tview.Escape(err.Error())))
	}
}

// startCommand launches a process without waiting for it
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

func openURL(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default:
		cmd = "xdg-open"
	}
	args = append(args, url)
	return startCommand(cmd, args...)
}
